package http

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

var registerOnce sync.Once

// RegisterValidators installs the enum tags used by the request DTOs on gin's
// shared validator and reports fields by their json names.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(utils.JSONTagName)
		if err = v.RegisterValidation("ticket_status", func(fl validator.FieldLevel) bool {
			return vo.TicketStatus(fl.Field().String()).IsValid()
		}); err != nil {
			return
		}
		err = v.RegisterValidation("ticket_priority", func(fl validator.FieldLevel) bool {
			return vo.Priority(fl.Field().String()).IsValid()
		})
	})
	return err
}

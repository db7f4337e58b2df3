package controllers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"civicpulse/models"
	"civicpulse/triage"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// RegisterValidators adds the portal, sortkey, category and panel binding tags
// to gin's validator. Safe to call more than once.
func RegisterValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		rules := map[string]validator.Func{
			"portal": func(fl validator.FieldLevel) bool {
				_, ok := models.ParseRole(fl.Field().String())
				return ok
			},
			"sortkey": func(fl validator.FieldLevel) bool {
				_, err := triage.ParseSortKey(fl.Field().String())
				return err == nil
			},
			"category": func(fl validator.FieldLevel) bool {
				_, ok := models.ParseCategory(fl.Field().String())
				return ok
			},
			"panel": func(fl validator.FieldLevel) bool {
				_, err := triage.ParsePanel(fl.Field().String())
				return err == nil
			},
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				validatorsErr = err
				return
			}
		}
	})
	return validatorsErr
}

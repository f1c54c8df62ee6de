package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/SscSPs/ledger_engine/internal/utils/localization"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorsOnce sync.Once

// registerValidators adds the ledgercode and langtag tags used by the dto
// binding rules to gin's validator.
func registerValidators() error {
	var err error
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("ledgercode", validateLedgerCode); err != nil {
			return
		}
		err = v.RegisterValidation("langtag", validateLanguageTag)
	})
	return err
}

// validateLedgerCode accepts flat domain and sub-journal codes in any case.
func validateLedgerCode(fl validator.FieldLevel) bool {
	_, err := accounting.NormalizeFlatCode(fl.Field().String())
	return err == nil
}

func validateLanguageTag(fl validator.FieldLevel) bool {
	_, err := localization.NormalizeLanguage(fl.Field().String())
	return err == nil
}

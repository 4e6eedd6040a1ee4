package http

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

var validatorsOnce sync.Once

// registerValidators teaches gin's validator the wardrobe tags and makes field errors use json
// names.
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseCategory(fl.Field().String())
			return ok
		})
	})
}

// bindJSON binds the body and writes a 400 with field-level errors on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make(map[string]string, len(ve))
			for _, fe := range ve {
				fields[fe.Field()] = fe.Tag()
			}
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body", "fields": fields})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return false
	}
	return true
}

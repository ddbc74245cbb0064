package handler

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/weiawesome/pxid/pkg/prefixid"
	"github.com/weiawesome/pxid/pkg/schema"
)

// RegisterBindings installs the prefixid rule on gin's binding validator so
// request DTOs can use `binding:"prefixid"`.
func RegisterBindings(gen *prefixid.Generator) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return schema.Register(v, gen)
}

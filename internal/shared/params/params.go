package params

import (
	"strconv"

	"go-enlacerb/internal/shared/apperror"
	"go-enlacerb/internal/shared/pagination"

	"github.com/gin-gonic/gin"
)

// ID parses a positive integer path parameter.
func ID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, apperror.ErrInvalidID
	}
	return uint(v), nil
}

// Page binds ?skip= and ?limit= with their defaults.
func Page(c *gin.Context) (pagination.Params, error) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		return pagination.Params{}, apperror.MapValidationError(err)
	}
	return p, nil
}

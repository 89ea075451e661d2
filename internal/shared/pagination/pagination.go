package pagination

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Params is the offset window bound from ?skip=&limit= query parameters.
// Out of range values are rejected at binding, never clamped.
type Params struct {
	Skip  int `form:"skip,default=0" binding:"gte=0"`
	Limit int `form:"limit,default=100" binding:"gte=1,lte=1000"`
}

package preview

import "errors"

var ErrRender = errors.New("preview.errors.render")

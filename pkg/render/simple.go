package render

import "github.com/yinjianfei/owlapi/pkg/model"

// SimpleRenderer returns an object's default textual form
type SimpleRenderer struct{}

// Render returns obj.String()
func (SimpleRenderer) Render(obj model.Object) string {
	return obj.String()
}

func init() {
	MustRegister(SimpleName, func() (interface{}, error) { return SimpleRenderer{}, nil })
}

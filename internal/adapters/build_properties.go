package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/magiconair/properties"

	"github.com/delexi/ensime/internal/ports"
)

// BuildPropertiesAdapter loads Java-style properties files, as written
// by sbt into project/build.properties.
type BuildPropertiesAdapter struct{}

func NewBuildPropertiesAdapter() BuildPropertiesAdapter {
	return BuildPropertiesAdapter{}
}

func (BuildPropertiesAdapter) Load(path string) (map[string]string, error) {
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to load build properties").
			WithCause(err)
	}
	return props.Map(), nil
}

var _ ports.BuildPropertiesPort = BuildPropertiesAdapter{}

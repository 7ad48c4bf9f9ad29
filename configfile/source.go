package configfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Parameter keys read from the deferred custom action data.
const (
	ParamContent       = "customParameterConfigContent"
	ParamPath          = "customParameterConfigPath"
	ParamCurrentFolder = "configInCurrentFolder"
)

// SourceKind tells how the configuration was supplied.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceContent
	SourcePath
	SourceCurrentFolder
)

func (k SourceKind) String() string {
	switch k {
	case SourceContent:
		return "content"
	case SourcePath:
		return "path"
	case SourceCurrentFolder:
		return "current folder"
	default:
		return "none"
	}
}

// Source is a resolved configuration source. Value holds the file content
// for SourceContent and a file or folder path otherwise.
type Source struct {
	Kind  SourceKind
	Value string
}

// ResolveSource picks the configuration source from installer parameters.
// Inline content wins over an explicit path, which wins over the current
// folder. Empty values are ignored.
func ResolveSource(params map[string]string) Source {
	switch {
	case params[ParamContent] != "":
		return Source{Kind: SourceContent, Value: params[ParamContent]}
	case params[ParamPath] != "":
		return Source{Kind: SourcePath, Value: params[ParamPath]}
	case params[ParamCurrentFolder] != "":
		return Source{Kind: SourceCurrentFolder, Value: params[ParamCurrentFolder]}
	default:
		return Source{}
	}
}

// NormalizeSourcePath treats a path without a .cfg extension as a folder
// and returns the absolute path of the default file inside it.
func NormalizeSourcePath(path, fileName string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), Extension) {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return filepath.Join(abs, fileName), nil
}

package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"ssmlc/common"
	"ssmlc/config"
	"ssmlc/content"
	"ssmlc/state"
)

// buildOutputPath returns output name relative to destination. It uses either
// default naming scheme or user-defined template and takes into account
// whether to preserve source directory structure on the output. Every path
// segment is cleaned and, if requested, transliterated.
func buildOutputPath(c *content.Content, src string, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, env)
	defaultFile := buildDefaultFileName(src, c.OutputFormat, env)

	if env.Cfg.Document.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(c, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(outDir, defaultFile)
	}

	return assemblePathWithSubdirs(outDir, expandedName, c.OutputFormat, env)
}

func determineOutputDir(src string, env *state.LocalEnv) string {
	if env.NoDirs {
		return ""
	}
	if dir := filepath.Dir(src); dir != "." {
		return dir
	}
	return ""
}

func buildDefaultFileName(src string, format common.OutputFmt, env *state.LocalEnv) string {
	return cleanPathSegment(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)), env) + format.Ext()
}

func expandOutputNameTemplate(c *content.Content, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(c, config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate, c.OutputFormat)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(filepath.FromSlash(expandedName))
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into output path,
// cleaning and transliterating segments as needed.
func assemblePathWithSubdirs(outDir, expandedName string, format common.OutputFmt, env *state.LocalEnv) string {
	pathSegments := splitAndCleanPath(expandedName)
	if len(pathSegments) == 0 {
		return filepath.Join(outDir, "_bad_file_name_"+format.Ext())
	}

	parts := make([]string, 0, len(pathSegments)+1)
	parts = append(parts, outDir)
	for _, segment := range pathSegments[:len(pathSegments)-1] {
		parts = append(parts, cleanPathSegment(segment, env))
	}
	parts = append(parts, cleanPathSegment(pathSegments[len(pathSegments)-1], env)+format.Ext())
	return filepath.Join(parts...)
}

// splitAndCleanPath drops empty, "." and ".." segments so expanded template
// could never point outside of destination.
func splitAndCleanPath(path string) []string {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == os.PathSeparator || r == '/'
	})
	return slices.DeleteFunc(segments, func(s string) bool {
		s = strings.TrimSpace(s)
		return s == "" || s == "." || s == ".."
	})
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

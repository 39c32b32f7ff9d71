package state

import (
	"time"

	"ssmlc/cache"
	"ssmlc/ssml"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

// PrepareCache sizes parse cache according to loaded configuration. Without
// configuration caching is off.
func (e *LocalEnv) PrepareCache() {
	var limits cache.Limits
	if e.Cfg != nil {
		limits = e.Cfg.Document.Cache
	}
	e.Parsed = cache.New[*ssml.Element](limits)
}

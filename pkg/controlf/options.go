package controlf

import "github.com/controlf/controlf-go/pkg/controlf/loader"

// LoadOptions configures source loading.
type LoadOptions = loader.Options

// DefaultLoadOptions returns the default load options: a ten-line
// sniff sample and no forced delimiter.
func DefaultLoadOptions() LoadOptions {
	return loader.DefaultOptions()
}

//go:build tools

package hashbench

import (
	_ "github.com/matryer/moq"
	_ "github.com/mgechev/revive"
)

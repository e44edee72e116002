//go:build tools

package complianceos

import (
	_ "github.com/dmarkham/enumer"
)

package objects

import (
	"github.com/kaspanet/notestub/infrastructure/logger"
)

var log = logger.RegisterSubSystem("NOBJ")

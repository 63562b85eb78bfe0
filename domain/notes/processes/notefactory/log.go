package notefactory

import (
	"github.com/kaspanet/notestub/infrastructure/logger"
)

var log = logger.RegisterSubSystem("NFAC")

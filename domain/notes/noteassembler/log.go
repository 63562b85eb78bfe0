package noteassembler

import (
	"github.com/kaspanet/notestub/infrastructure/logger"
)

var log = logger.RegisterSubSystem("NASM")

// Package appcontext tells components whether the process serves HTTP or runs a
// one-off CLI command.
package appcontext

type Env int

const (
	EnvServer Env = iota
	EnvCLI
)

func (e Env) String() string {
	switch e {
	case EnvServer:
		return "server"
	case EnvCLI:
		return "cli"
	default:
		return "unknown"
	}
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}

// IsServer reports whether the process serves HTTP requests.
func (c Ctx) IsServer() bool {
	return c.Env == EnvServer
}

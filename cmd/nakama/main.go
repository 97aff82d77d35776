package main

import (
	"context"
	"database/sql"

	"pusoydos/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule proxies Nakama initialization to the nakama adapter package.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}

// main is unused: the file is compiled as a Nakama plugin, which loads
// InitModule via the plugin mechanism. It exists so `go build` can link
// the package as an ordinary binary.
func main() {}

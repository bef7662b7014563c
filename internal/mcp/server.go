package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"drift/internal/mood"
	"drift/internal/persist"
)

type Server struct {
	store  *persist.Adapter
	prefix string
	clock  mood.Clock
	mcp    *sdk.Server
}

func NewServer(store *persist.Adapter, prefix string, clock mood.Clock, version string) *Server {
	s := &Server{
		store:  store,
		prefix: prefix,
		clock:  clock,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "drift",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}

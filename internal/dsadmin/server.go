// Package dsadmin is the station's admin HTTP surface: health/status
// endpoints for anyone, and reboot/restart-code endpoints gated behind a
// shared token. It is not part of the protocol core (spec.md lists no CLI
// or HTTP surface for the core itself) — it is the supplemental operator
// interface a real driver station needs around that core.
package dsadmin

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ridgeline-robotics/dsproto/internal/auth"
	"github.com/ridgeline-robotics/dsproto/internal/dsprotocol"
	"github.com/ridgeline-robotics/dsproto/internal/node"
	"github.com/ridgeline-robotics/dsproto/internal/observability"
)

// Server is the station's admin HTTP node: it satisfies node.Node so it
// can be wired the same way the rest of the fleet's HTTP surfaces are.
type Server struct {
	id         string
	descriptor *dsprotocol.Descriptor
	validator  auth.Validator
	appeared   time.Time

	router *gin.Engine
}

var _ node.Node = (*Server)(nil)

// New builds a Server bound to descriptor, with admin routes gated by
// validator (pass nil to leave the admin routes unauthenticated, e.g. in
// local development).
func New(id string, descriptor *dsprotocol.Descriptor, validator auth.Validator, corsOrigins []string) *Server {
	observability.RegisterMetrics()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(log.Logger))
	router.Use(observability.RequestMetricsMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	_ = router.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		id:         id,
		descriptor: descriptor,
		validator:  validator,
		appeared:   time.Now(),
		router:     router,
	}
	s.registerRoutes()
	return s
}

func (s *Server) NodeID() string          { return s.id }
func (s *Server) Kind() string            { return "driver-station" }
func (s *Server) HTTPRouter() *gin.Engine { return s.router }

// Serve blocks, running the admin HTTP server on addr.
func (s *Server) Serve(addr string) error {
	return s.router.Run(addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

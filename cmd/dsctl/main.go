package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ridgeline-robotics/dsproto/internal/auth"
	"github.com/ridgeline-robotics/dsproto/internal/config"
	"github.com/ridgeline-robotics/dsproto/internal/dsadmin"
	"github.com/ridgeline-robotics/dsproto/internal/dsprotocol"
	"github.com/ridgeline-robotics/dsproto/internal/dsstate"
	"github.com/ridgeline-robotics/dsproto/internal/observability"
	"github.com/ridgeline-robotics/dsproto/internal/transport"
	"github.com/ridgeline-robotics/dsproto/internal/wire"
)

func main() {
	configPath := "cmd/dsctl/config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadStationConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load station config")
	}

	observability.InitLogger(cfg.TeamNumber, cfg.LogLevel)
	log.Info().Str("path", configPath).Msg("loaded station config")

	state := dsstate.New()
	state.SetTeamNumber(cfg.TeamNumber)
	if cfg.Alliance == "blue" {
		state.SetAlliance(wire.AllianceBlue)
	} else {
		state.SetAlliance(wire.AllianceRed)
	}
	state.SetPosition(positionFromConfig(cfg.Position))

	descriptor := dsprotocol.New(state)

	robotConn, err := transport.Dial(dsprotocol.Sockets()[2], descriptor.RobotAddress())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open robot socket")
	}
	defer robotConn.Close()

	fmsConn, err := transport.Dial(dsprotocol.Sockets()[0], descriptor.FMSAddress())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open fms socket")
	}
	defer fmsConn.Close()

	scheduler := transport.NewScheduler(descriptor, map[string]transport.Sender{
		"fms":   fmsConn,
		"robot": robotConn,
	})
	scheduler.Start()
	defer scheduler.Stop()

	robotWatchdog := transport.NewPeerWatchdog("robot", 1*time.Second, func() {
		descriptor.ResetRobot()
		state.SetRobotComms(false)
		observability.SetCommsUp("robot", false)
	})
	robotWatchdog.Start(50 * time.Millisecond)
	defer robotWatchdog.Stop()

	fmsWatchdog := transport.NewPeerWatchdog("fms", 3*time.Second, func() {
		descriptor.ResetFMS()
		state.SetFMSComms(false)
		observability.SetCommsUp("fms", false)
	})
	fmsWatchdog.Start(200 * time.Millisecond)
	defer fmsWatchdog.Stop()

	robotReceiver := transport.NewReceiver("robot", robotConn, descriptor.ParseRobotPacket, state.SetRobotComms, robotWatchdog)
	robotReceiver.Start()
	defer robotReceiver.Stop()

	fmsReceiver := transport.NewReceiver("fms", fmsConn, descriptor.ParseFMSPacket, state.SetFMSComms, fmsWatchdog)
	fmsReceiver.Start()
	defer fmsReceiver.Stop()

	var validator auth.Validator
	if token := os.Getenv("DSCTL_ADMIN_TOKEN"); token != "" {
		validator = auth.StaticToken{Token: token}
	}

	admin := dsadmin.New("dsctl", descriptor, validator, cfg.CorsOrigins)
	log.Info().Str("addr", cfg.AdminAddr).Uint16("team", cfg.TeamNumber).Msg("driver station admin server starting")
	if err := admin.Serve(cfg.AdminAddr); err != nil {
		log.Fatal().Err(err).Msg("admin server stopped")
	}
}

func positionFromConfig(position int) wire.Position {
	switch position {
	case 2:
		return wire.Position2
	case 3:
		return wire.Position3
	default:
		return wire.Position1
	}
}

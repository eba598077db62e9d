package dsadmin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ridgeline-robotics/dsproto/internal/auth"
)

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(s.appeared).String(),
			"node":   s.id,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/status", func(c *gin.Context) {
		state := s.descriptor.State()
		c.JSON(http.StatusOK, gin.H{
			"team_number":    state.TeamNumber(),
			"alliance":       state.Alliance().String(),
			"position":       state.Position().String(),
			"control_mode":   state.ControlMode().String(),
			"enabled":        state.Enabled(),
			"e_stopped":      state.EStopped(),
			"fms_comms":      state.FMSComms(),
			"radio_comms":    state.RadioComms(),
			"robot_comms":    state.RobotComms(),
			"robot_has_code": state.RobotHasCode(),
			"robot_voltage":  state.RobotVoltage(),
			"cpu_usage":      state.CPUUsage(),
			"ram_usage":      state.RAMUsage(),
			"disk_usage":     state.DiskUsage(),
			"can_usage":      state.CANUsage(),
			"fms_address":    s.descriptor.FMSAddress(),
			"radio_address":  s.descriptor.RadioAddress(),
			"robot_address":  s.descriptor.RobotAddress(),
		})
	})

	admin := s.router.Group("/", s.requireAuth())
	admin.POST("/reboot", func(c *gin.Context) {
		s.descriptor.RebootRobot()
		c.JSON(http.StatusAccepted, gin.H{"status": "reboot requested"})
	})
	admin.POST("/restart-code", func(c *gin.Context) {
		s.descriptor.RestartRobotCode()
		c.JSON(http.StatusAccepted, gin.H{"status": "code restart requested"})
	})
}

// requireAuth validates the raw Authorization header value against
// s.validator; no "Bearer " scheme prefix is stripped. A nil validator leaves the route open, for local
// development without a token configured.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.validator == nil {
			c.Next()
			return
		}
		token := c.GetHeader("Authorization")
		if err := s.validator.Validate(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrUnauthorized.Error()})
			return
		}
		c.Next()
	}
}

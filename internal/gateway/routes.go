package gateway

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/ragwire/internal/graphrag"
	"github.com/danmuck/ragwire/internal/observability"
	"github.com/danmuck/ragwire/internal/protocol/frame"
	"github.com/danmuck/ragwire/internal/render"
)

var ErrProtobufBody = errors.New("gateway: encode expects a json, yaml or cbor body")

func (g *Gateway) RegisterRoutes() {
	r := g.router
	r.GET("/health", g.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"uptime":  time.Since(g.Appeared).String(),
			"service": g.Name,
			"version": Version,
		})
	})

	v1 := r.Group("/v1")
	v1.GET("/messages", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"messages": g.registry.Names()})
	})
	v1.GET("/messages/:name", func(c *gin.Context) {
		entry, err := g.registry.Lookup(c.Param("name"))
		if err != nil {
			g.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": entry.Name, "fields": entry.Fields})
	})
	v1.POST("/encode/:name", g.encode)
	v1.POST("/decode/:name", g.decode)
}

func (g *Gateway) health(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats := g.pool.Stats()

	resp := &graphrag.HealthCheckResponse{
		Status:    graphrag.Ptr("ok"),
		Version:   graphrag.Ptr(Version),
		Timestamp: graphrag.Ptr(time.Now().UTC().Format(time.RFC3339)),
		Services: map[string]string{
			"codec": "ok",
			"pool":  "idle=" + strconv.Itoa(stats.Idle),
		},
		SystemPerformance: &graphrag.PerformanceMetrics{
			MemoryUsageBytes: graphrag.Ptr(int64(mem.HeapAlloc)),
		},
	}

	format := render.FromAccept(c.GetHeader("Accept"), render.JSON)
	if format == render.Protobuf {
		c.Data(http.StatusOK, format.ContentType(), g.codec.EncodeHealthCheckResponse(resp))
		return
	}
	g.render(c, format, resp)
}

func (g *Gateway) encode(c *gin.Context) {
	entry, err := g.registry.Lookup(c.Param("name"))
	if err != nil {
		g.fail(c, err)
		return
	}
	format := render.JSON
	if ct := c.GetHeader("Content-Type"); ct != "" {
		if format, err = render.ParseFormat(ct); err != nil {
			g.fail(c, err)
			return
		}
	}
	if format == render.Protobuf {
		g.fail(c, ErrProtobufBody)
		return
	}

	body, err := g.readBody(c)
	if err != nil {
		g.fail(c, err)
		return
	}
	msg := entry.New()
	if err := render.Unmarshal(format, body, msg); err != nil {
		g.fail(c, err)
		return
	}
	data, err := entry.Encode(msg)
	if err != nil {
		g.fail(c, err)
		return
	}

	if framedQuery(c) {
		var out bytes.Buffer
		if err := frame.WriteFrame(&out, frame.Frame{Payload: data}, g.cfg.FrameLimits()); err != nil {
			g.fail(c, err)
			return
		}
		c.Data(http.StatusOK, "application/grpc+proto", out.Bytes())
		return
	}
	c.Data(http.StatusOK, render.Protobuf.ContentType(), data)
}

// decode accepts a bare message, or with a gRPC content type or
// ?framed=true a sequence of length-prefixed frames. Trailer frames are
// ignored. Framed input renders as a list.
func (g *Gateway) decode(c *gin.Context) {
	entry, err := g.registry.Lookup(c.Param("name"))
	if err != nil {
		g.fail(c, err)
		return
	}
	body, err := g.readBody(c)
	if err != nil {
		g.fail(c, err)
		return
	}

	framed := framedQuery(c) || strings.HasPrefix(strings.ToLower(c.GetHeader("Content-Type")), "application/grpc")
	payloads := [][]byte{body}
	if framed {
		frames, err := frame.SplitFrames(body, g.cfg.FrameLimits())
		if err != nil {
			g.fail(c, err)
			return
		}
		payloads = payloads[:0]
		for _, f := range frames {
			if !f.Trailer() {
				payloads = append(payloads, f.Payload)
			}
		}
	}

	msgs := make([]any, 0, len(payloads))
	for _, p := range payloads {
		m, err := entry.Decode(p)
		if err != nil {
			g.fail(c, err)
			return
		}
		msgs = append(msgs, m)
	}

	format := render.FromAccept(c.GetHeader("Accept"), render.JSON)
	if format == render.Protobuf {
		var out []byte
		for _, m := range msgs {
			data, err := entry.Encode(m)
			if err != nil {
				g.fail(c, err)
				return
			}
			if framed {
				data = frame.Encode(data)
			}
			out = append(out, data...)
		}
		c.Data(http.StatusOK, format.ContentType(), out)
		return
	}
	if framed {
		g.render(c, format, msgs)
		return
	}
	g.render(c, format, msgs[0])
}

func (g *Gateway) render(c *gin.Context, format render.Format, v any) {
	data, err := render.Marshal(format, v)
	if err != nil {
		log.Error().Err(err).Str("request_id", observability.RequestIDFrom(c)).Msg("render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, format.ContentType(), data)
}

func (g *Gateway) readBody(c *gin.Context) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, g.limits.MaxBodyBytes))
}

func (g *Gateway) fail(c *gin.Context, err error) {
	status := statusFor(err)
	log.Debug().
		Str("request_id", observability.RequestIDFrom(c)).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Err(err).
		Msg("request rejected")
	c.JSON(status, gin.H{
		"error":      err.Error(),
		"request_id": observability.RequestIDFrom(c),
	})
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, graphrag.ErrUnknownMessage):
		return http.StatusNotFound
	case errors.As(err, &tooLarge), errors.Is(err, frame.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}

func framedQuery(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.DefaultQuery("framed", "false"))
	return err == nil && v
}

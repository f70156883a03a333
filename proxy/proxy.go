// Package proxy forwards browser calls on /api/permits to the permit store service.
// Requests and successful responses pass through untouched; failures are reduced to a
// status code and a message, falling back to per-verb defaults.
package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"permitportal/controllers"
	"permitportal/logger"
	"permitportal/metrics"

	"github.com/gin-gonic/gin"
)

type route struct {
	verb           string
	method         string
	withID         bool
	withBody       bool
	failureStatus  int
	failureMessage string
}

var (
	listRoute   = route{"list", http.MethodGet, false, false, http.StatusInternalServerError, "Failed to fetch permits"}
	getRoute    = route{"get", http.MethodGet, true, false, http.StatusNotFound, "Permit not found"}
	createRoute = route{"create", http.MethodPost, false, true, http.StatusInternalServerError, "Failed to create permit"}
	updateRoute = route{"update", http.MethodPatch, true, true, http.StatusInternalServerError, "Failed to update permit"}
	deleteRoute = route{"delete", http.MethodDelete, true, false, http.StatusInternalServerError, "Failed to delete permit"}
)

type Proxy struct {
	baseURL string
	client  *http.Client
	log     logger.Logger
}

// New returns a Proxy targeting baseURL. A zero timeout leaves outbound calls unbounded.
func New(baseURL string, timeout time.Duration, log logger.Logger) *Proxy {
	return &Proxy{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// GET /api/permits
func (p *Proxy) ListPermits(c *gin.Context) { p.forward(c, listRoute) }

// GET /api/permits/:id
func (p *Proxy) GetPermit(c *gin.Context) { p.forward(c, getRoute) }

// POST /api/permits
func (p *Proxy) CreatePermit(c *gin.Context) { p.forward(c, createRoute) }

// PATCH /api/permits/:id
func (p *Proxy) UpdatePermit(c *gin.Context) { p.forward(c, updateRoute) }

// DELETE /api/permits/:id
func (p *Proxy) DeletePermit(c *gin.Context) { p.forward(c, deleteRoute) }

func (p *Proxy) forward(c *gin.Context, rt route) {
	target := p.baseURL + "/permits"
	if rt.withID {
		target += "/" + url.PathEscape(c.Param("id"))
	}

	var body io.Reader
	if rt.withBody {
		body = c.Request.Body
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), rt.method, target, body)
	if err != nil {
		p.fail(c, rt, err)
		return
	}
	if rt.withBody {
		contentType := c.GetHeader("Content-Type")
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.fail(c, rt, err)
		return
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		p.fail(c, rt, err)
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ProxyUpstreamErrors.WithLabelValues(rt.verb).Inc()
		p.relayError(c, rt, resp.StatusCode, payload)
		return
	}

	if len(payload) == 0 {
		c.Status(resp.StatusCode)
		return
	}
	c.Data(resp.StatusCode, resp.Header.Get("Content-Type"), payload)
}

// fail answers for an upstream that could not be reached at all.
func (p *Proxy) fail(c *gin.Context, rt route, err error) {
	metrics.ProxyUpstreamErrors.WithLabelValues(rt.verb).Inc()
	p.log.WithError(err).Warn("permit backend unreachable", map[string]interface{}{
		"verb": rt.verb,
		"id":   c.Param("id"),
	})
	controllers.RespondError(c, rt.failureMessage, rt.failureStatus)
}

func (p *Proxy) relayError(c *gin.Context, rt route, status int, payload []byte) {
	var upstream struct {
		Error   string   `json:"error"`
		Message any      `json:"message"`
		Details []string `json:"details"`
	}
	if err := json.Unmarshal(payload, &upstream); err != nil && len(payload) > 0 {
		p.log.WithError(err).Debug("upstream error body is not json", map[string]interface{}{
			"verb":   rt.verb,
			"status": status,
		})
	}

	msg := upstream.Error
	if msg == "" {
		if s, ok := upstream.Message.(string); ok {
			msg = s
		}
	}
	if msg == "" {
		msg = rt.failureMessage
	}

	if len(upstream.Details) > 0 {
		c.JSON(status, gin.H{"error": msg, "details": upstream.Details})
		return
	}
	controllers.RespondError(c, msg, status)
}

// Package gateway is the edge reverse proxy. It routes /<service-name>/*
// paths to the backing services, logs every request, and converts transport
// failures into a fixed 500 body so downstream exceptions never leak raw.
package gateway

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/discovery"
)

const proxyErrorBody = "Exception caught by gateway."

type Proxy struct {
	resolver discovery.Resolver
	client   *http.Client
	log      *logrus.Entry
}

func NewProxy(resolver discovery.Resolver, timeout time.Duration) *Proxy {
	return &Proxy{
		resolver: resolver,
		client:   &http.Client{Timeout: timeout},
		log:      logrus.WithField("service", "api-gateway"),
	}
}

// Route returns a handler that forwards the request to the named service,
// stripping the service prefix from the path.
func (p *Proxy) Route(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p.log.Infof("Request received, Request URI: %s", c.Request.RequestURI)

		base, err := p.resolver.Resolve(c.Request.Context(), service)
		if err != nil {
			p.log.WithError(err).Errorf("Could not resolve service %s.", service)
			p.fail(c)
			return
		}

		targetURL := base + strings.TrimPrefix(c.Request.URL.Path, "/"+service)
		if c.Request.URL.RawQuery != "" {
			targetURL += "?" + c.Request.URL.RawQuery
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
		}

		req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, targetURL, bytes.NewReader(bodyBytes))
		if err != nil {
			p.fail(c)
			return
		}
		for key, values := range c.Request.Header {
			for _, value := range values {
				req.Header.Add(key, value)
			}
		}

		resp, err := p.client.Do(req)
		if err != nil {
			p.log.WithError(err).Error("Exception caught while proxying request.")
			p.fail(c)
			return
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			p.fail(c)
			return
		}

		for key, values := range resp.Header {
			for _, value := range values {
				c.Header(key, value)
			}
		}
		c.Data(resp.StatusCode, resp.Header.Get("Content-Type"), respBody)
	}
}

func (p *Proxy) fail(c *gin.Context) {
	c.String(http.StatusInternalServerError, proxyErrorBody)
}

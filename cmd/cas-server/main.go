// cmd/cas-server is a JSON-RPC 2.0 tool endpoint for the CAS kernel,
// rebuilt on jsonrpc2.Handler the way elves-elvish's cmd/elvish-lsp is
// rebuilt on the same library (pkg/lsp/server.go's routingHandler
// dispatch), combined with the teacher's cmd/mcp-server/main.go flag
// handling and panic recovery. Each request gets a 15-second context
// deadline, which the CAS operations themselves do not observe.
//
// One RPC method per CAS operation: cas/evaluate, cas/simplify, cas/roots,
// cas/factor, cas/differentiate, cas/integrate, cas/render, cas/batch,
// cas/health.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"runtime/debug"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/njchilds90/gocas/cas"
	"github.com/njchilds90/gocas/render"
)

const requestTimeout = 15 * time.Second

func main() {
	port := flag.Int("port", 0, "TCP port to listen on; 0 selects stdio transport")
	flag.Parse()

	logger := log.New(os.Stderr, "cas-server: ", log.LstdFlags)
	s := &server{logger: logger}

	if *port == 0 {
		logger.Printf("listening on stdio")
		conn := jsonrpc2.NewConn(context.Background(),
			jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}), s.handler())
		<-conn.DisconnectNotify()
		return
	}

	addr := fmt.Sprintf(":%d", *port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatalf("listen: %v", err)
	}
	logger.Printf("listening on %s", addr)
	for {
		c, err := ln.Accept()
		if err != nil {
			logger.Printf("accept: %v", err)
			continue
		}
		jsonrpc2.NewConn(context.Background(),
			jsonrpc2.NewBufferedStream(c, jsonrpc2.VSCodeObjectCodec{}), s.handler())
	}
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		os.Stdout.Close()
		return err
	}
	return os.Stdout.Close()
}

type server struct {
	logger *log.Logger
}

type method func(ctx context.Context, params json.RawMessage) (interface{}, error)

var errInvalidParams = &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}

func (s *server) handler() jsonrpc2.Handler {
	methods := map[string]method{
		"cas/evaluate":      s.evaluate,
		"cas/simplify":      s.simplify,
		"cas/roots":         s.roots,
		"cas/factor":        s.factor,
		"cas/differentiate": s.differentiate,
		"cas/integrate":     s.integrate,
		"cas/render":        s.render,
		"cas/batch":         s.batch,
		"cas/health":        s.health,
	}
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Printf("panic handling %s: %v\n%s", req.Method, r, debug.Stack())
				err = &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: "internal error"}
			}
		}()
		fn, ok := methods[req.Method]
		if !ok {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
		}
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		var raw json.RawMessage
		if req.Params != nil {
			raw = *req.Params
		}
		return fn(ctx, raw)
	})
}

type exprParams struct {
	Expr string `json:"expr"`
}

type varParams struct {
	Expr string `json:"expr"`
	Var  string `json:"var"`
}

type integrateParams struct {
	Expr string  `json:"expr"`
	Var  string  `json:"var"`
	Lo   float64 `json:"lo"`
	Hi   float64 `json:"hi"`
}

type batchParams struct {
	Exprs []string `json:"exprs"`
}

type resultResponse struct {
	TeX string `json:"tex"`
}

type rootsResponse struct {
	Roots []string `json:"roots"`
}

type factorResponse struct {
	Factors   []string `json:"factors"`
	Remainder string   `json:"remainder"`
}

type integrateResponse struct {
	Value float64 `json:"value"`
}

type batchResponse struct {
	Results []batchItem `json:"results"`
	Errors  []string    `json:"errors,omitempty"`
}

type batchItem struct {
	TeX   string `json:"tex,omitempty"`
	Error string `json:"error,omitempty"`
}

func decode(raw json.RawMessage, v interface{}) error {
	if raw == nil {
		return errInvalidParams
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errInvalidParams
	}
	return nil
}

func (s *server) evaluate(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var p exprParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	r, err := cas.Evaluate(p.Expr)
	if err != nil {
		return nil, err
	}
	return resultResponse{TeX: r.TeX}, nil
}

func (s *server) simplify(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var p exprParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	r, err := cas.Simplify(p.Expr)
	if err != nil {
		return nil, err
	}
	return resultResponse{TeX: r.TeX}, nil
}

func (s *server) render(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var p exprParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	r, err := cas.Render(p.Expr)
	if err != nil {
		return nil, err
	}
	return resultResponse{TeX: r.TeX}, nil
}

func (s *server) differentiate(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var p varParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	r, err := cas.Differentiate(p.Expr, p.Var)
	if err != nil {
		return nil, err
	}
	return resultResponse{TeX: r.TeX}, nil
}

func (s *server) roots(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var p varParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	roots, err := cas.Roots(p.Expr, p.Var)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(roots))
	for i, r := range roots {
		out[i] = render.Render(r)
	}
	return rootsResponse{Roots: out}, nil
}

func (s *server) factor(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var p varParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	factors, remainder, err := cas.Factor(p.Expr, p.Var)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(factors))
	for i, f := range factors {
		out[i] = render.Render(f.ToExpression(p.Var))
	}
	return factorResponse{Factors: out, Remainder: render.Render(remainder.ToExpression(p.Var))}, nil
}

func (s *server) integrate(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var p integrateParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	v, err := cas.Integrate(p.Expr, p.Var, p.Lo, p.Hi)
	if err != nil {
		return nil, err
	}
	return integrateResponse{Value: v}, nil
}

func (s *server) batch(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var p batchParams
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	results, err := cas.BatchEvaluate(p.Exprs)
	resp := batchResponse{Results: make([]batchItem, len(results))}
	for i, r := range results {
		if r.Expr == nil {
			resp.Results[i] = batchItem{Error: "failed to evaluate"}
			continue
		}
		resp.Results[i] = batchItem{TeX: r.TeX}
	}
	if err != nil {
		resp.Errors = append(resp.Errors, err.Error())
	}
	return resp, nil
}

func (s *server) health(_ context.Context, _ json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

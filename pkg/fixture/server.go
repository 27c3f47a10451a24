package fixture

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/gorilla/mux"

	"github.com/hpsilva/oanda-api-v20/pkg/core"
)

type errorBody struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode,omitempty"`
}

// NewServer returns a handler that answers every endpoint at its template
// path with the endpoint's expected status and its fixture body, verbatim.
// Endpoints without a fixture answer "{}". Body-bearing endpoints reject a
// request whose body is not valid JSON with 400, and unknown routes answer
// 404, both with a platform-style error body.
func NewServer(endpoints []core.Endpoint, table *Table) http.Handler {
	r := mux.NewRouter()

	for _, ep := range endpoints {
		body := []byte("{}")
		if f, ok := table.Lookup(ep.FixtureKey); ok {
			body = f.Response
		}
		r.HandleFunc("/"+ep.Template, handler(ep, body)).Methods(ep.Method)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, "", fmt.Sprintf("no route for %s %s", req.Method, req.URL.Path))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "", fmt.Sprintf("method %s not allowed", req.Method))
	})

	return r
}

func handler(ep core.Endpoint, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if ep.Attribute == core.AttrData {
			payload, err := io.ReadAll(req.Body)
			if err != nil || !sonic.Valid(payload) {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", "request body must be a JSON document")
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(ep.ExpectedStatus)
		_, _ = w.Write(body)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	data, _ := sonic.Marshal(errorBody{ErrorMessage: message, ErrorCode: code})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

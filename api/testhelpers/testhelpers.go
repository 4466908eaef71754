package testhelpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/shaj13/go-guardian/auth"

	"github.com/youpower/youpower-api/api"
)

// NewRequest builds a request with an optional JSON body, the given mux
// route variables and, when userID is set, an authenticated user
func NewRequest(method, target string, body interface{}, vars map[string]string, userID string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	if userID != "" {
		req = req.WithContext(api.WithUser(req.Context(), auth.NewDefaultUser(userID+"@example.com", userID, nil, nil)))
	}
	return req
}

package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/venev-g/psychoassess/internal/config"
)

// GuestLoginHandler issues respondent tokens without an account so
// anyone can take an assessment. A cookie pins the guest identity to
// the browser, keeping results reachable across visits.
// POST /auth/guest
func GuestLoginHandler(a *AuthService, db *sql.DB, cfg config.Config) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.EnableGuestAuth {
			http.Error(w, "guest auth disabled", http.StatusForbidden)
			return
		}

		// Reuse an existing guest identity from the cookie.
		if c, err := r.Cookie("pa_guest_id"); err == nil && strings.HasPrefix(c.Value, "guest-") {
			var role string
			err := db.QueryRowContext(r.Context(),
				`SELECT role FROM users WHERE username=$1`, c.Value).Scan(&role)
			if err == nil && role == "respondent" {
				tok, err := a.IssueJWT(c.Value, role)
				if err != nil {
					http.Error(w, "issue token", http.StatusInternalServerError)
					return
				}
				setGuestCookie(w, c.Value)
				_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: c.Value})
				return
			}
		}

		username := "guest-" + strconv.FormatInt(time.Now().UnixNano(), 36)
		// Empty pass_hash: bcrypt never matches it, so guests cannot log
		// in through the credential endpoint.
		_, _ = db.ExecContext(r.Context(),
			`INSERT INTO users (username, pass_hash, role) VALUES ($1,'','respondent')
			 ON CONFLICT (username) DO NOTHING`, username)

		tok, err := a.IssueJWT(username, "respondent")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		setGuestCookie(w, username)
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
	}
}

func setGuestCookie(w http.ResponseWriter, username string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "pa_guest_id",
		Value:    username,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

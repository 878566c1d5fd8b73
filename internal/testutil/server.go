// Package testutil provides a fake AccommoTrack backend for package
// tests: a gorilla/mux router over in-memory state, speaking the same
// REST contract (including Laravel-style validation envelopes and the
// multipart `_method` override) the real server does.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/utils"
)

const (
	// TestToken is the bearer token issued by the fake login.
	TestToken = "test-token"
	// TestPassword is the seeded account password.
	TestPassword = "Secur3#1"
)

// Server is the in-memory backend. Mutate its exported fields to seed
// scenarios; inspect Requests to assert which calls were (not) made.
type Server struct {
	mu sync.Mutex

	HTTP *httptest.Server

	Profile       models.TenantProfile
	Preferences   json.RawMessage
	Notifications models.NotificationSettings
	Properties    map[int64]*models.Property
	Users         map[int64]*models.User
	Verifications map[int64]*models.LandlordVerification
	TakenEmails   map[string]bool

	passwordHash []byte
	nextAssetID  int64

	// Requests records "METHOD /path" in arrival order.
	Requests []string

	// FailNextWrite forces the next mutating request to answer 500.
	FailNextWrite bool
}

func NewServer() *Server {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s := &Server{
		Profile: models.TenantProfile{
			ID:        1,
			FirstName: "Ana",
			LastName:  "Reyes",
			Email:     "ana@example.com",
			Phone:     "09171234567",
		},
		Preferences:   json.RawMessage(`{"schema_version":1,"budget_min":5000,"budget_max":12000}`),
		Notifications: models.NotificationSettings{EmailBookingUpdates: true, EmailMessages: true},
		Properties:    map[int64]*models.Property{},
		Users:         map[int64]*models.User{},
		Verifications: map[int64]*models.LandlordVerification{},
		TakenEmails:   map[string]bool{"ana@example.com": true},
		passwordHash:  hash,
		nextAssetID:   100,
	}

	r := mux.NewRouter()
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.authed(s.handleOK)).Methods(http.MethodPost)
	r.HandleFunc("/check-email", s.handleCheckEmail).Methods(http.MethodGet)

	r.HandleFunc("/tenant/profile", s.authed(s.handleGetProfile)).Methods(http.MethodGet)
	r.HandleFunc("/tenant/profile", s.authed(s.handleUpdateProfile)).Methods(http.MethodPut, http.MethodPost)
	r.HandleFunc("/tenant/change-password", s.authed(s.handleChangePassword)).Methods(http.MethodPost)
	r.HandleFunc("/tenant/preferences", s.authed(s.handleGetPreferences)).Methods(http.MethodGet)
	r.HandleFunc("/tenant/preferences", s.authed(s.handleUpdatePreferences)).Methods(http.MethodPut)
	r.HandleFunc("/tenant/notifications", s.authed(s.handleGetNotifications)).Methods(http.MethodGet)
	r.HandleFunc("/tenant/notifications", s.authed(s.handleUpdateNotifications)).Methods(http.MethodPut)

	r.HandleFunc("/landlord/properties/verify-password", s.authed(s.handleVerifyPassword)).Methods(http.MethodPost)
	r.HandleFunc("/landlord/properties/{id}", s.authed(s.handleGetProperty)).Methods(http.MethodGet)
	r.HandleFunc("/landlord/properties/{id}", s.authed(s.handleUpdateProperty)).Methods(http.MethodPut, http.MethodPost)
	r.HandleFunc("/landlord/properties/{id}", s.authed(s.handleDeleteProperty)).Methods(http.MethodDelete)

	r.HandleFunc("/admin/users", s.authed(s.handleListUsers)).Methods(http.MethodGet)
	r.HandleFunc("/admin/users/{id}/block", s.authed(s.userAction(models.AccountStatusBlocked))).Methods(http.MethodPost)
	r.HandleFunc("/admin/users/{id}/unblock", s.authed(s.userAction(models.AccountStatusActive))).Methods(http.MethodPost)
	r.HandleFunc("/admin/users/{id}/approve", s.authed(s.userAction(models.AccountStatusActive))).Methods(http.MethodPost)
	r.HandleFunc("/admin/properties/{id:[0-9]+}/approve", s.authed(s.propertyAction(models.PropertyStatusApproved))).Methods(http.MethodPost)
	r.HandleFunc("/admin/properties/{id:[0-9]+}/reject", s.authed(s.propertyAction(models.PropertyStatusRejected))).Methods(http.MethodPost)
	r.HandleFunc("/admin/properties/{status}", s.authed(s.handleListProperties)).Methods(http.MethodGet)
	r.HandleFunc("/admin/landlord-verifications", s.authed(s.handleListVerifications)).Methods(http.MethodGet)
	r.HandleFunc("/admin/landlord-verifications/{id}/reject", s.authed(s.handleRejectVerification)).Methods(http.MethodPost)

	logged := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		s.Requests = append(s.Requests, req.Method+" "+req.URL.Path)
		s.mu.Unlock()
		r.ServeHTTP(w, req)
	})
	s.HTTP = httptest.NewServer(logged)
	return s
}

func (s *Server) Close() { s.HTTP.Close() }

func (s *Server) URL() string { return s.HTTP.URL }

// RequestCount returns how many requests matched the "METHOD /path"
// prefix.
func (s *Server) RequestCount(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.Requests {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+TestToken {
			writeError(w, http.StatusUnauthorized, "Unauthenticated.", nil)
			return
		}
		next(w, r)
	}
}

// failWrite consumes the FailNextWrite flag, answering 500 once.
func (s *Server) failWrite(w http.ResponseWriter) bool {
	s.mu.Lock()
	fail := s.FailNextWrite
	s.FailNextWrite = false
	s.mu.Unlock()
	if fail {
		writeError(w, http.StatusInternalServerError, "Server Error", nil)
	}
	return fail
}

func (s *Server) handleOK(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.", nil)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if body.Email != s.Profile.Email || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(body.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials.", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": TestToken,
		"user": models.User{
			ID:            s.Profile.ID,
			Role:          models.RoleTenant,
			FirstName:     s.Profile.FirstName,
			LastName:      s.Profile.LastName,
			Email:         s.Profile.Email,
			AccountStatus: models.AccountStatusActive,
		},
	})
}

func (s *Server) handleCheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	s.mu.Lock()
	taken := s.TakenEmails[email]
	s.mu.Unlock()
	resp := map[string]any{"available": !taken}
	if taken {
		resp["message"] = "This email is already registered."
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if s.failWrite(w) {
		return
	}
	updated := func(first, last, email, phone, bio, occupation string) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.Profile.FirstName = first
		s.Profile.LastName = last
		s.Profile.Email = email
		s.Profile.Phone = phone
		s.Profile.Bio = bio
		s.Profile.Occupation = occupation
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid multipart payload.", nil)
			return
		}
		if r.FormValue("_method") != http.MethodPut {
			writeError(w, http.StatusMethodNotAllowed, "Expected _method=PUT override.", nil)
			return
		}
		updated(r.FormValue("first_name"), r.FormValue("last_name"), r.FormValue("email"),
			r.FormValue("phone"), r.FormValue("bio"), r.FormValue("occupation"))
		if file, hdr, err := r.FormFile("avatar"); err == nil {
			file.Close()
			s.mu.Lock()
			s.nextAssetID++
			s.Profile.Avatar = utils.Ptr(models.ExistingOf(s.nextAssetID, "/uploads/"+hdr.Filename, 0, true))
			s.mu.Unlock()
		}
	} else {
		var draft models.TenantProfile
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid payload.", nil)
			return
		}
		if draft.FirstName == "" {
			writeError(w, http.StatusUnprocessableEntity, "The given data was invalid.",
				map[string][]string{"first_name": {"The first name field is required."}})
			return
		}
		updated(draft.FirstName, draft.LastName, draft.Email, draft.Phone, draft.Bio, draft.Occupation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Profile)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if s.failWrite(w) {
		return
	}
	var body models.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.", nil)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(body.CurrentPassword)) != nil {
		writeError(w, http.StatusUnprocessableEntity, "The given data was invalid.",
			map[string][]string{"current_password": {"The current password is incorrect."}})
		return
	}
	if body.Password != body.PasswordConfirmation {
		writeError(w, http.StatusUnprocessableEntity, "The given data was invalid.",
			map[string][]string{"password_confirmation": {"The password confirmation does not match."}})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.MinCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server Error", nil)
		return
	}
	s.passwordHash = hash
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated."})
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(s.Preferences)
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if s.failWrite(w) {
		return
	}
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.", nil)
		return
	}
	s.mu.Lock()
	s.Preferences = raw
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

func (s *Server) handleGetNotifications(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Notifications)
}

func (s *Server) handleUpdateNotifications(w http.ResponseWriter, r *http.Request) {
	if s.failWrite(w) {
		return
	}
	var draft models.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.", nil)
		return
	}
	s.mu.Lock()
	s.Notifications = draft
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, draft)
}

func (s *Server) handleVerifyPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.", nil)
		return
	}
	s.mu.Lock()
	verified := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(body.Password)) == nil
	s.mu.Unlock()
	resp := map[string]any{"verified": verified}
	if !verified {
		resp["message"] = "The password is incorrect."
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	prop, ok := s.Properties[id]
	if !ok {
		writeError(w, http.StatusNotFound, "Property not found.", nil)
		return
	}
	writeJSON(w, http.StatusOK, prop)
}

func (s *Server) handleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	if s.failWrite(w) {
		return
	}
	id := pathID(r)
	s.mu.Lock()
	prop, ok := s.Properties[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Property not found.", nil)
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(64 << 20); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid multipart payload.", nil)
			return
		}
		if r.FormValue("_method") != http.MethodPut {
			writeError(w, http.StatusMethodNotAllowed, "Expected _method=PUT override.", nil)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		prop.Title = r.FormValue("title")
		prop.Address = r.FormValue("address")
		prop.City = r.FormValue("city")
		if v := r.FormValue("description"); v != "" {
			prop.Description = v
		}
		if v := r.FormValue("monthly_rate"); v != "" {
			if rate, err := strconv.ParseFloat(v, 64); err == nil {
				prop.MonthlyRate = rate
			}
		}
		s.applyDeletionsLocked(prop, r.PostForm["deleted_images[]"], r.PostForm["deleted_credentials[]"])
		if files := r.MultipartForm.File["images[]"]; files != nil {
			for _, hdr := range files {
				s.nextAssetID++
				prop.Images = append(prop.Images, models.ExistingOf(s.nextAssetID, "/uploads/"+hdr.Filename, len(prop.Images), false))
			}
		}
		if files := r.MultipartForm.File["credentials[]"]; files != nil {
			for _, hdr := range files {
				s.nextAssetID++
				prop.Credentials = append(prop.Credentials, models.ExistingOf(s.nextAssetID, "/uploads/"+hdr.Filename, len(prop.Credentials), false))
			}
		}
		s.applyOrderingLocked(prop, r.FormValue("image_order"), r.FormValue("primary_image_id"))
		writeJSON(w, http.StatusOK, prop)
		return
	}

	var body struct {
		models.Property
		DeletedImages      []int64                  `json:"deleted_images"`
		DeletedCredentials []int64                  `json:"deleted_credentials"`
		PrimaryImageID     int64                    `json:"primary_image_id"`
		ImageOrder         []models.ImageOrderEntry `json:"image_order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.", nil)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prop.Title = body.Title
	prop.Description = body.Description
	prop.Address = body.Address
	prop.City = body.City
	prop.MonthlyRate = body.MonthlyRate
	del := make([]string, len(body.DeletedImages))
	for i, v := range body.DeletedImages {
		del[i] = strconv.FormatInt(v, 10)
	}
	delCred := make([]string, len(body.DeletedCredentials))
	for i, v := range body.DeletedCredentials {
		delCred[i] = strconv.FormatInt(v, 10)
	}
	s.applyDeletionsLocked(prop, del, delCred)
	orderJSON, _ := json.Marshal(body.ImageOrder)
	s.applyOrderingLocked(prop, string(orderJSON), strconv.FormatInt(body.PrimaryImageID, 10))
	if len(prop.Images) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "The given data was invalid.",
			map[string][]string{"images": {"A property must keep at least one photo."}})
		return
	}
	writeJSON(w, http.StatusOK, prop)
}

func (s *Server) applyDeletionsLocked(prop *models.Property, imageIDs, credentialIDs []string) {
	drop := func(assets []models.Asset, ids []string) []models.Asset {
		if len(ids) == 0 {
			return assets
		}
		gone := map[int64]bool{}
		for _, raw := range ids {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				gone[id] = true
			}
		}
		out := assets[:0]
		for _, a := range assets {
			if a.Existing != nil && gone[a.Existing.ID] {
				continue
			}
			out = append(out, a)
		}
		return out
	}
	prop.Images = drop(prop.Images, imageIDs)
	prop.Credentials = drop(prop.Credentials, credentialIDs)
}

func (s *Server) applyOrderingLocked(prop *models.Property, orderJSON, primaryRaw string) {
	if orderJSON != "" {
		var order []models.ImageOrderEntry
		if err := json.Unmarshal([]byte(orderJSON), &order); err == nil {
			pos := map[int64]int{}
			for _, e := range order {
				pos[e.ID] = e.DisplayOrder
			}
			for i := range prop.Images {
				if ex := prop.Images[i].Existing; ex != nil {
					if p, ok := pos[ex.ID]; ok {
						ex.DisplayOrder = p
					}
				}
			}
		}
	}
	if primary, err := strconv.ParseInt(primaryRaw, 10, 64); err == nil && primary != 0 {
		for i := range prop.Images {
			if ex := prop.Images[i].Existing; ex != nil {
				ex.Primary = ex.ID == primary
			}
		}
	}
}

func (s *Server) handleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	if s.failWrite(w) {
		return
	}
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.", nil)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(body.Password)) != nil {
		writeError(w, http.StatusForbidden, "The password is incorrect.", nil)
		return
	}
	id := pathID(r)
	if _, ok := s.Properties[id]; !ok {
		writeError(w, http.StatusNotFound, "Property not found.", nil)
		return
	}
	delete(s.Properties, id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Property deleted."})
}

func (s *Server) handleListUsers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.Users))
	for _, u := range s.Users {
		out = append(out, *u)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) userAction(status models.AccountStatusType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.failWrite(w) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		u, ok := s.Users[pathID(r)]
		if !ok {
			writeError(w, http.StatusNotFound, "User not found.", nil)
			return
		}
		u.AccountStatus = status
		writeJSON(w, http.StatusOK, u)
	}
}

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	status := models.PropertyStatusType(mux.Vars(r)["status"])
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Property{}
	for _, p := range s.Properties {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) propertyAction(status models.PropertyStatusType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.failWrite(w) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		p, ok := s.Properties[pathID(r)]
		if !ok {
			writeError(w, http.StatusNotFound, "Property not found.", nil)
			return
		}
		p.Status = status
		writeJSON(w, http.StatusOK, p)
	}
}

func (s *Server) handleListVerifications(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LandlordVerification, 0, len(s.Verifications))
	for _, v := range s.Verifications {
		out = append(out, *v)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRejectVerification(w http.ResponseWriter, r *http.Request) {
	if s.failWrite(w) {
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.", nil)
		return
	}
	if len(strings.TrimSpace(body.Reason)) < 10 {
		writeError(w, http.StatusUnprocessableEntity, "The given data was invalid.",
			map[string][]string{"reason": {"The reason must be at least 10 characters."}})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.Verifications[pathID(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "Verification not found.", nil)
		return
	}
	v.Status = models.VerificationRejected
	v.Reason = body.Reason
	writeJSON(w, http.StatusOK, v)
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string, fieldErrors map[string][]string) {
	body := map[string]any{"message": message}
	if fieldErrors != nil {
		body["errors"] = fieldErrors
	}
	writeJSON(w, status, body)
}

// SeedProperty installs a property with n existing images and returns it.
func (s *Server) SeedProperty(id int64, imageCount int) *models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &models.Property{
		ID:          id,
		LandlordID:  7,
		Title:       fmt.Sprintf("Unit %d", id),
		Address:     "12 Mabini St",
		City:        "Quezon City",
		MonthlyRate: 8500,
		Status:      models.PropertyStatusApproved,
	}
	for i := 0; i < imageCount; i++ {
		s.nextAssetID++
		p.Images = append(p.Images, models.ExistingOf(s.nextAssetID, fmt.Sprintf("/uploads/img-%d.jpg", s.nextAssetID), i, i == 0))
	}
	s.Properties[id] = p
	return p
}

// SeedUser installs an admin-visible user row.
func (s *Server) SeedUser(id int64, role models.RoleType, status models.AccountStatusType) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ID: id, Role: role, FirstName: "Seed", LastName: fmt.Sprintf("User%d", id), Email: fmt.Sprintf("seed%d@example.com", id), AccountStatus: status}
	s.Users[id] = u
	return u
}

// SeedVerification installs a pending landlord verification.
func (s *Server) SeedVerification(id int64) *models.LandlordVerification {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := &models.LandlordVerification{ID: id, LandlordID: 7, FullName: "Juan dela Cruz", Status: models.VerificationPending}
	s.Verifications[id] = v
	return v
}

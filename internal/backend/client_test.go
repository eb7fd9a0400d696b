package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"shipdesk/internal/models"
)

const testToken = "tok-123"

func newTestCaller(t *testing.T, h http.HandlerFunc) (*Caller, *int) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	hits := 0
	c := New(srv.URL+"/api/", 5*time.Second)
	return c.As(testToken, func() { hits++ }), &hits
}

func TestCallerAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRID, gotPath string
	caller, _ := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRID = r.Header.Get(RequestIDHeader)
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"total_projects":1,"projects":[{"project_id":"p1","project_name":"MV Test","project_status":"Active"}]}`)
	})

	ctx := WithRequestID(context.Background(), "rid-42")
	projects, err := caller.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if gotAuth != "Bearer "+testToken {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotRID != "rid-42" {
		t.Errorf("X-Request-ID = %q, want rid-42", gotRID)
	}
	if gotPath != "/api/projects/" {
		t.Errorf("path = %q", gotPath)
	}
	if len(projects) != 1 || projects[0].ProjectStatus != models.StatusActive {
		t.Errorf("projects = %+v", projects)
	}
}

func TestCallerGeneratesRequestIDWhenMissing(t *testing.T) {
	var gotRID string
	caller, _ := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		gotRID = r.Header.Get(RequestIDHeader)
		io.WriteString(w, `{"vessel_types":[]}`)
	})

	if _, err := caller.VesselTypes(context.Background()); err != nil {
		t.Fatalf("VesselTypes() error = %v", err)
	}
	if gotRID == "" {
		t.Error("expected generated request id")
	}
}

func TestUnauthorizedFiresHookOncePerResponse(t *testing.T) {
	calls := 0
	caller, hits := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"msg":"Token has expired"}`)
	})

	_, err := caller.GetProject(context.Background(), "p1")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if *hits != 1 {
		t.Fatalf("hook fired %d times, want 1", *hits)
	}

	_, _ = caller.ListProjects(context.Background())
	if *hits != 2 || calls != 2 {
		t.Errorf("hook fired %d times for %d responses", *hits, calls)
	}
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	caller, hits := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"Project code already exists"}`)
	})

	_, err := caller.CreateProject(context.Background(), models.ProjectInput{ProjectName: "x"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Project code already exists" {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if UserMessage(err) != "Project code already exists" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
	if StatusFor(err) != http.StatusBadRequest {
		t.Errorf("StatusFor() = %d", StatusFor(err))
	}
	if !HasStatus(err, http.StatusBadRequest) || HasStatus(err, http.StatusMethodNotAllowed) {
		t.Error("HasStatus() does not match the response status")
	}
	if *hits != 0 {
		t.Error("hook must not fire on 400")
	}
}

func TestAPIErrorFallsBackToMessageField(t *testing.T) {
	caller, _ := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"message":"database unavailable"}`)
	})

	err := caller.UpdateProject(context.Background(), "p1", models.ProjectUpdate{})
	if UserMessage(err) != "database unavailable" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestLatestGAInputNotFound(t *testing.T) {
	caller, _ := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/gainputs/project/p1/latest" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"No GA input"}`)
	})

	_, err := caller.LatestGAInput(context.Background(), "p1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateVesselSendsCamelCasePayload(t *testing.T) {
	var body map[string]any
	caller, _ := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/vessels/" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"message":"Vessel created successfully","vessel_id":"V1"}`)
	})

	id, err := caller.CreateVessel(context.Background(), models.VesselInput{
		VesselTypeID:   "vt-1",
		LOA:            50,
		DesignSpeed:    12,
		NavigationArea: models.NavigationSea,
		ClassSociety:   "DNV",
		VersionNumber:  "1.0",
	})
	if err != nil {
		t.Fatalf("CreateVessel() error = %v", err)
	}
	if id != "V1" {
		t.Errorf("id = %q", id)
	}
	for _, key := range []string{"vesselTypeId", "designSpeed", "navigationArea", "classSociety", "versionNumber"} {
		if _, ok := body[key]; !ok {
			t.Errorf("payload missing %q: %v", key, body)
		}
	}
}

func TestCreateVesselWithoutIDIsAnError(t *testing.T) {
	caller, _ := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"message":"ok"}`)
	})

	if _, err := caller.CreateVessel(context.Background(), models.VesselInput{}); err == nil {
		t.Error("expected error for missing vessel_id")
	}
}

func TestLoginBadCredentialsIsNotIntercepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry a bearer token")
		}
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Invalid credentials"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Login(context.Background(), "a@b.c", "nope")
	if errors.Is(err, ErrUnauthorized) {
		t.Fatal("login 401 must surface as APIError, not ErrUnauthorized")
	}
	if UserMessage(err) != "Invalid credentials" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in loginRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Email != "admin@nirmon.local" || in.Password != "secret" {
			t.Errorf("login body = %+v", in)
		}
		io.WriteString(w, `{"token":"jwt","user_id":"u1","name":"Admin","email":"admin@nirmon.local","role_id":"r1","role_name":"Admin"}`)
	}))
	defer srv.Close()

	res, err := New(srv.URL, time.Second).Login(context.Background(), "admin@nirmon.local", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	s := res.Session()
	if s.Token != "jwt" || s.DisplayName != "Admin" || s.RoleName != "Admin" || !s.Authenticated() {
		t.Errorf("session = %+v", s)
	}
}

func TestTransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	caller := New(url, time.Second).As(testToken, nil)
	_, err := caller.ListProjects(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if StatusFor(err) != http.StatusBadGateway {
		t.Errorf("StatusFor() = %d, want 502", StatusFor(err))
	}
	if !strings.Contains(UserMessage(err), "Could not reach") {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestCanceledContextAbortsCall(t *testing.T) {
	caller, _ := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"projects":[]}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := caller.ListProjects(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

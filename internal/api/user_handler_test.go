package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestCreateUser_MissingFields(t *testing.T) {
	app, _, users := newTestApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"no username", `{"password":"secret1","roles":["Employee"]}`},
		{"no password", `{"username":"alice","roles":["Employee"]}`},
		{"no roles", `{"username":"alice","password":"secret1"}`},
		{"empty roles", `{"username":"alice","password":"secret1","roles":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doJSON(t, app, "POST", "/api/users", tc.body)
			wantStatus(t, status, 400)
			if !strings.Contains(body, "All fields are required") {
				t.Errorf("unexpected body: %s", body)
			}
		})
	}
	if all, _ := users.FindAll(context.Background()); len(all) != 0 {
		t.Errorf("no user should be persisted, got %d", len(all))
	}
}

func TestCreateUser_DuplicateUsernameConflict(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/users", `{"username":"alice","password":"secret1","roles":["Employee"]}`)
	wantStatus(t, status, 200)
	if !strings.Contains(body, "New user alice created") {
		t.Errorf("unexpected body: %s", body)
	}

	status, body = doJSON(t, app, "POST", "/api/users", `{"username":"alice","password":"other","roles":["Manager"]}`)
	wantStatus(t, status, 409)
	if !strings.Contains(body, "Duplicate username") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestGetAllUsers_ExcludesPassword(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/users", "")
	wantStatus(t, status, 400)
	if !strings.Contains(body, "No users found") {
		t.Errorf("unexpected body: %s", body)
	}

	doJSON(t, app, "POST", "/api/users", `{"username":"alice","password":"secret1","roles":["Employee"]}`)

	status, body = doJSON(t, app, "GET", "/api/users", "")
	wantStatus(t, status, 200)
	if strings.Contains(body, "password") || strings.Contains(body, "secret1") {
		t.Errorf("password leaked into response: %s", body)
	}

	var users []map[string]interface{}
	if err := json.Unmarshal([]byte(body), &users); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(users) != 1 || users[0]["username"] != "alice" {
		t.Errorf("unexpected users: %v", users)
	}
}

func TestUpdateUser_Validation(t *testing.T) {
	app, _, _ := newTestApp(t)
	doJSON(t, app, "POST", "/api/users", `{"username":"alice","password":"secret1","roles":["Employee"]}`)

	// active missing
	status, _ := doJSON(t, app, "PATCH", "/api/users", `{"id":1,"username":"alice","roles":["Employee"]}`)
	wantStatus(t, status, 400)

	// unknown id
	status, body := doJSON(t, app, "PATCH", "/api/users", `{"id":42,"username":"alice2","roles":["Employee"],"active":true}`)
	wantStatus(t, status, 400)
	if !strings.Contains(body, "User not found") {
		t.Errorf("unexpected body: %s", body)
	}

	// password stays optional
	status, body = doJSON(t, app, "PATCH", "/api/users", `{"id":1,"username":"alice2","roles":["Manager"],"active":false}`)
	wantStatus(t, status, 200)
	if !strings.Contains(body, "alice2 updated") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestDeleteUser_MissingID(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, body := doJSON(t, app, "DELETE", "/api/users", `{}`)
	wantStatus(t, status, 400)
	if !strings.Contains(body, "User ID required") {
		t.Errorf("unexpected body: %s", body)
	}
}

// TestUserNoteLifecycle walks the full flow: create a user, assign a note,
// observe the join, hit the deletion guard, then tear both down.
func TestUserNoteLifecycle(t *testing.T) {
	app, _, users := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/users", `{"username":"alice","password":"secret1","roles":["Employee"]}`)
	wantStatus(t, status, 200)

	status, _ = doJSON(t, app, "POST", "/api/notes", `{"user":1,"title":"T1","text":"body"}`)
	wantStatus(t, status, 200)

	status, body := doJSON(t, app, "GET", "/api/notes", "")
	wantStatus(t, status, 200)
	var views []map[string]interface{}
	if err := json.Unmarshal([]byte(body), &views); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(views) != 1 || views[0]["title"] != "T1" || views[0]["username"] != "alice" {
		t.Fatalf("unexpected notes: %v", views)
	}

	// the assigned note blocks user deletion
	status, body = doJSON(t, app, "DELETE", "/api/users", `{"id":1}`)
	wantStatus(t, status, 400)
	if !strings.Contains(body, "User has assigned notes") {
		t.Errorf("unexpected body: %s", body)
	}
	if stored, _ := users.FindByID(context.Background(), 1); stored == nil {
		t.Fatal("user removed despite assigned notes")
	}

	status, _ = doJSON(t, app, "DELETE", "/api/notes", `{"id":1}`)
	wantStatus(t, status, 200)

	status, body = doJSON(t, app, "DELETE", "/api/users", `{"id":1}`)
	wantStatus(t, status, 200)
	if !strings.Contains(body, "Username alice with ID 1 deleted") {
		t.Errorf("unexpected body: %s", body)
	}
}

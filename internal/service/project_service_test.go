package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/wedcontrol/internal/seed"
	"github.com/mmynk/wedcontrol/pkg/api"
)

func createProject(t *testing.T, c *testClients, req *api.CreateProjectRequest) *api.Project {
	t.Helper()
	resp, err := c.projects.CreateProject(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	return resp.Msg.Project
}

func defaultCreateRequest() *api.CreateProjectRequest {
	return &api.CreateProjectRequest{
		GroomName:   "Ivan",
		BrideName:   "Anna",
		Date:        time.Now().UTC().AddDate(0, 6, 0),
		VenueName:   "Manor",
		GuestsCount: " 80 ",
	}
}

func TestCreateProject(t *testing.T) {
	c := setupTestServer(t)

	p := createProject(t, c, defaultCreateRequest())

	if p.Id == "" {
		t.Error("expected non-empty project ID")
	}
	if p.GuestsCount != 80 {
		t.Errorf("guests count: expected 80, got %d", p.GuestsCount)
	}
	if p.OrganizerName != "Owner" {
		t.Errorf("organizer: expected owner fallback, got %q", p.OrganizerName)
	}
	if p.PrepLocation != "home" || p.RegistrationType != "official" {
		t.Errorf("unexpected defaults: %s/%s", p.PrepLocation, p.RegistrationType)
	}
	if len(p.ClientPassword) != 4 {
		t.Errorf("expected 4-digit password, got %q", p.ClientPassword)
	}
	if len(p.Tasks) != len(seed.TaskTemplate) {
		t.Errorf("tasks: expected %d, got %d", len(seed.TaskTemplate), len(p.Tasks))
	}
	if len(p.Expenses) != len(seed.Expenses()) {
		t.Errorf("expenses: expected %d, got %d", len(seed.Expenses()), len(p.Expenses))
	}
	if len(p.Timing) == 0 || p.Timing[0].Id == "" {
		t.Errorf("expected default timing with ids, got %+v", p.Timing)
	}
	if p.Guests == nil {
		t.Error("expected empty, non-null guest list")
	}

	if _, ok := c.store.Get(p.Id); !ok {
		t.Error("project not stored")
	}
}

func TestCreateProject_HotelOffsiteAndOrganizer(t *testing.T) {
	c := setupTestServer(t)

	member, err := c.team.AddMember(context.Background(), connect.NewRequest(&api.AddMemberRequest{Name: "Olga"}))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	req := defaultCreateRequest()
	req.OrganizerId = member.Msg.Member.Id
	req.PrepLocation = "hotel"
	req.RegistrationType = "offsite"
	p := createProject(t, c, req)

	if p.OrganizerName != "Olga" {
		t.Errorf("organizer: expected 'Olga', got %q", p.OrganizerName)
	}
	if len(p.Tasks) != len(seed.TaskTemplate)+2 {
		t.Errorf("tasks: expected template plus 2 extras, got %d", len(p.Tasks))
	}
	if len(p.Expenses) != len(seed.Expenses())+2 {
		t.Errorf("expenses: expected defaults plus 2 extras, got %d", len(p.Expenses))
	}
	for i := 1; i < len(p.Tasks); i++ {
		if p.Tasks[i].Deadline.Before(p.Tasks[i-1].Deadline) {
			t.Fatalf("tasks not sorted by deadline at %d", i)
		}
	}
}

func TestCreateProject_InvalidEnum(t *testing.T) {
	c := setupTestServer(t)

	req := defaultCreateRequest()
	req.PrepLocation = "castle"
	_, err := c.projects.CreateProject(context.Background(), connect.NewRequest(req))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestGetProject(t *testing.T) {
	c := setupTestServer(t)
	created := createProject(t, c, defaultCreateRequest())

	resp, err := c.projects.GetProject(context.Background(), connect.NewRequest(&api.GetProjectRequest{
		ProjectId: created.Id,
	}))
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}

	ov := resp.Msg.Overview
	if ov.OpenTasks != len(created.Tasks) {
		t.Errorf("open tasks: expected %d, got %d", len(created.Tasks), ov.OpenTasks)
	}
	if len(ov.Upcoming) != 3 {
		t.Errorf("expected 3 upcoming tasks, got %d", len(ov.Upcoming))
	}
	if ov.DayStart != "09:00" {
		t.Errorf("day start: expected 09:00, got %q", ov.DayStart)
	}
	if ov.DaysUntil <= 0 {
		t.Errorf("expected positive days until event, got %d", ov.DaysUntil)
	}

	_, err = c.projects.GetProject(context.Background(), connect.NewRequest(&api.GetProjectRequest{ProjectId: "missing"}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestUpdateProject(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	created := createProject(t, c, defaultCreateRequest())

	update := func(u *api.ProjectUpdate) *api.Project {
		t.Helper()
		resp, err := c.projects.UpdateProject(ctx, connect.NewRequest(&api.UpdateProjectRequest{
			ProjectId: created.Id,
			Update:    u,
		}))
		if err != nil {
			t.Fatalf("UpdateProject failed: %v", err)
		}
		return resp.Msg.Project
	}

	p := update(&api.ProjectUpdate{SetNotes: &api.SetNotes{Notes: "call the florist"}})
	if p.Notes != "call the florist" {
		t.Errorf("notes: got %q", p.Notes)
	}

	p = update(&api.ProjectUpdate{ReplaceExpenseLine: &api.ReplaceExpenseLine{
		Index:   0,
		Expense: api.ExpenseInput{Name: "Venue", Plan: "1000", Fact: "abc", Paid: " 200 "},
	}})
	if e := p.Expenses[0]; e.Plan != 1000 || e.Fact != 0 || e.Paid != 200 {
		t.Errorf("expense not coerced: %+v", e)
	}

	lines := len(p.Expenses)
	p = update(&api.ProjectUpdate{AddExpense: &api.AddExpense{
		Expense: api.ExpenseInput{Name: "Florist", Plan: "15 000", Fact: "1e3", Paid: "x"},
	}})
	if len(p.Expenses) != lines+1 {
		t.Fatalf("expense not added: %+v", p.Expenses)
	}
	if e := p.Expenses[lines]; e.Plan != 15000 || e.Fact != 1 || e.Paid != 0 {
		t.Errorf("added expense not coerced like a replaced line: %+v", e)
	}

	p = update(&api.ProjectUpdate{AddTimingEntry: &api.AddTimingEntry{
		Entry: api.TimingEntry{Time: "00:30", Event: "Night walk"},
	}})
	if p.Timing[0].Event != "Night walk" || p.Timing[0].Id == "" {
		t.Errorf("timing not sorted or id missing: %+v", p.Timing[0])
	}

	p = update(&api.ProjectUpdate{SetDetails: &api.SetDetails{
		GroomName:        "Pavel",
		BrideName:        "Maria",
		Date:             created.Date,
		GuestsCount:      "120",
		PrepLocation:     "hotel",
		RegistrationType: "offsite",
		ClientPassword:   "1111",
	}})
	if p.GroomName != "Pavel" || p.GuestsCount != 120 || p.PrepLocation != "hotel" {
		t.Errorf("details not applied: %+v", p)
	}

	stored, _ := c.store.Get(created.Id)
	if stored.Notes != "call the florist" || stored.GroomName != "Pavel" {
		t.Errorf("store out of sync: %+v", stored)
	}
}

func TestUpdateProject_Errors(t *testing.T) {
	c := setupTestServer(t)
	created := createProject(t, c, defaultCreateRequest())

	tests := []struct {
		name string
		req  *api.UpdateProjectRequest
		code connect.Code
	}{
		{
			name: "unknown project",
			req:  &api.UpdateProjectRequest{ProjectId: "nope", Update: &api.ProjectUpdate{SetNotes: &api.SetNotes{}}},
			code: connect.CodeNotFound,
		},
		{
			name: "empty envelope",
			req:  &api.UpdateProjectRequest{ProjectId: created.Id, Update: &api.ProjectUpdate{}},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "missing envelope",
			req:  &api.UpdateProjectRequest{ProjectId: created.Id},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "two updates",
			req: &api.UpdateProjectRequest{ProjectId: created.Id, Update: &api.ProjectUpdate{
				SetNotes:   &api.SetNotes{Notes: "a"},
				RemoveTask: &api.RemoveTask{TaskId: "t"},
			}},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "bad registration type",
			req: &api.UpdateProjectRequest{ProjectId: created.Id, Update: &api.ProjectUpdate{
				SetDetails: &api.SetDetails{RegistrationType: "church"},
			}},
			code: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.projects.UpdateProject(context.Background(), connect.NewRequest(tt.req))
			if connect.CodeOf(err) != tt.code {
				t.Errorf("expected %v, got %v", tt.code, err)
			}
		})
	}
}

func TestToggleArchiveAndList(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	first := createProject(t, c, defaultCreateRequest())
	createProject(t, c, defaultCreateRequest())

	resp, err := c.projects.ToggleArchive(ctx, connect.NewRequest(&api.ToggleArchiveRequest{ProjectId: first.Id}))
	if err != nil {
		t.Fatalf("ToggleArchive failed: %v", err)
	}
	if resp.Msg.Changed || resp.Msg.Project.IsArchived {
		t.Error("unconfirmed toggle must not change the project")
	}

	resp, err = c.projects.ToggleArchive(ctx, connect.NewRequest(&api.ToggleArchiveRequest{ProjectId: first.Id, Confirm: true}))
	if err != nil {
		t.Fatalf("ToggleArchive failed: %v", err)
	}
	if !resp.Msg.Changed || !resp.Msg.Project.IsArchived {
		t.Error("expected project archived")
	}

	list, err := c.projects.ListProjects(ctx, connect.NewRequest(&api.ListProjectsRequest{}))
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(list.Msg.Active) != 1 || len(list.Msg.Archived) != 1 {
		t.Fatalf("expected 1 active and 1 archived, got %d/%d", len(list.Msg.Active), len(list.Msg.Archived))
	}
	if list.Msg.Archived[0].Id != first.Id {
		t.Errorf("wrong project archived: %s", list.Msg.Archived[0].Id)
	}
}

func TestDeleteProject(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	p := createProject(t, c, defaultCreateRequest())

	resp, err := c.projects.DeleteProject(ctx, connect.NewRequest(&api.DeleteProjectRequest{ProjectId: p.Id}))
	if err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if resp.Msg.Deleted {
		t.Error("unconfirmed delete must not remove the project")
	}
	if _, ok := c.store.Get(p.Id); !ok {
		t.Fatal("project removed without confirmation")
	}

	resp, err = c.projects.DeleteProject(ctx, connect.NewRequest(&api.DeleteProjectRequest{ProjectId: p.Id, Confirm: true}))
	if err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if !resp.Msg.Deleted {
		t.Error("expected project deleted")
	}

	_, err = c.projects.DeleteProject(ctx, connect.NewRequest(&api.DeleteProjectRequest{ProjectId: p.Id, Confirm: true}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected NotFound on second delete, got %v", err)
	}
}

func TestExportProject(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	p := createProject(t, c, defaultCreateRequest())

	resp, err := c.projects.ExportProject(ctx, connect.NewRequest(&api.ExportProjectRequest{
		ProjectId: p.Id,
		View:      "timing",
	}))
	if err != nil {
		t.Fatalf("ExportProject failed: %v", err)
	}
	if resp.Msg.Filename != "timing.csv" {
		t.Errorf("filename: got %q", resp.Msg.Filename)
	}
	if !strings.HasPrefix(string(resp.Msg.Data), "\uFEFFTime;Event\n") {
		t.Errorf("unexpected csv: %q", resp.Msg.Data)
	}

	resp, err = c.projects.ExportProject(ctx, connect.NewRequest(&api.ExportProjectRequest{
		ProjectId: p.Id,
		View:      "budget",
		Format:    "xlsx",
	}))
	if err != nil {
		t.Fatalf("ExportProject xlsx failed: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(resp.Msg.Data))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("budget")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if last := rows[len(rows)-1]; last[0] != "TOTAL" {
		t.Errorf("expected totals row last, got %v", last)
	}

	_, err = c.projects.ExportProject(ctx, connect.NewRequest(&api.ExportProjectRequest{ProjectId: p.Id, View: "notes"}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

package handlers

import (
	"context"

	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginResp models.LoginResponse
	loginErr  error
	parseUser string
	parseErr  error
	initErr   error

	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
}

func (m *mockAuth) Login(username, password string) (models.LoginResponse, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginResp, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseUser, m.parseErr
}

func (m *mockAuth) InitializeDefaultUsers() error { return m.initErr }

type mockProjects struct {
	all     []dto.Project
	mine    []dto.Project
	single  dto.Project
	created dto.Project
	updated dto.Project

	getAllErr  error
	getMineErr error
	getByIDErr error
	createErr  error
	updateErr  error
	deleteErr  error

	lastUsername string
	lastID       int64
	lastInput    dto.Project
	deleteCalls  int
}

func (m *mockProjects) GetAll(_ context.Context, username string) ([]dto.Project, error) {
	m.lastUsername = username
	return m.all, m.getAllErr
}

func (m *mockProjects) GetMine(_ context.Context, username string) ([]dto.Project, error) {
	m.lastUsername = username
	return m.mine, m.getMineErr
}

func (m *mockProjects) GetByID(_ context.Context, username string, id int64) (dto.Project, error) {
	m.lastUsername = username
	m.lastID = id
	return m.single, m.getByIDErr
}

func (m *mockProjects) Create(_ context.Context, username string, in dto.Project) (dto.Project, error) {
	m.lastUsername = username
	m.lastInput = in
	return m.created, m.createErr
}

func (m *mockProjects) Update(_ context.Context, username string, id int64, in dto.Project) (dto.Project, error) {
	m.lastUsername = username
	m.lastID = id
	m.lastInput = in
	return m.updated, m.updateErr
}

func (m *mockProjects) Delete(_ context.Context, username string, id int64) error {
	m.lastUsername = username
	m.lastID = id
	m.deleteCalls++
	return m.deleteErr
}

type mockActivity struct {
	resp       []models.ActivityEvent
	err        error
	lastFilter service.ActivityFilter
}

func (m *mockActivity) Record(_ context.Context, e models.ActivityEvent) error {
	m.resp = append(m.resp, e)
	return nil
}

func (m *mockActivity) List(_ context.Context, f service.ActivityFilter) ([]models.ActivityEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

type mockProfile struct {
	profile   models.Profile
	getErr    error
	updateErr error

	lastUsername string
	lastInput    models.Profile
}

func (m *mockProfile) Get(_ context.Context) (models.Profile, error) {
	return m.profile, m.getErr
}

func (m *mockProfile) Update(_ context.Context, username string, p models.Profile) (models.Profile, error) {
	m.lastUsername = username
	m.lastInput = p
	return p, m.updateErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	routesGateway "shiftservice/internal/gateway/http/routes"
	"shiftservice/internal/handlers/rest/availability_get"
	"shiftservice/internal/handlers/rest/cap_alerts_get"
	"shiftservice/internal/handlers/rest/driving_log_post"
	"shiftservice/internal/handlers/rest/employee_get"
	"shiftservice/internal/handlers/rest/employee_post"
	"shiftservice/internal/handlers/rest/employee_put"
	"shiftservice/internal/handlers/rest/employees_get"
	"shiftservice/internal/handlers/rest/shift_assign_post"
	"shiftservice/internal/handlers/rest/shift_get"
	"shiftservice/internal/handlers/rest/shift_post"
	"shiftservice/internal/handlers/rest/shift_unassign_post"
	"shiftservice/internal/handlers/rest/suggestions_get"
	"shiftservice/internal/handlers/tasks/cap_alerts"
	"shiftservice/internal/pkg/config"
	"shiftservice/internal/pkg/factory/shift_event_handle"
	"shiftservice/internal/pkg/factory/week_window"

	assignmentRepo "shiftservice/internal/repository/assignment"
	availabilityRepo "shiftservice/internal/repository/availability"
	drivinglogRepo "shiftservice/internal/repository/drivinglog"
	employeeRepo "shiftservice/internal/repository/employee"
	shiftRepo "shiftservice/internal/repository/shift"
	suggestionRepo "shiftservice/internal/repository/suggestion"
	assignmentService "shiftservice/internal/service/assignment"
	availabilityService "shiftservice/internal/service/availability"
	drivinglogService "shiftservice/internal/service/drivinglog"
	employeeService "shiftservice/internal/service/employee"
	shiftService "shiftservice/internal/service/shift"
	shifteventService "shiftservice/internal/service/shiftevent"
	suggestionService "shiftservice/internal/service/suggestion"

	"shiftservice/pkg/background"
	"shiftservice/pkg/logger"
	"shiftservice/pkg/querier"
	"shiftservice/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CapAlertsInterval time.Duration
)

type Application struct {
	ServiceEmployee     ServiceEmployee
	ServiceShift        ServiceShift
	ServiceAvailability ServiceAvailability
	ServiceAssignment   ServiceAssignment
	ServiceDrivingLog   ServiceDrivingLog
	ServiceSuggestion   ServiceSuggestion
	BackgroundWorkers   *background.Worker
}

type ServiceEmployee interface {
	employee_get.Service
	employee_post.Service
	employee_put.Service
	employees_get.Service
}

type ServiceShift interface {
	shift_get.Service
	shift_post.Service
}

type ServiceAvailability interface {
	availability_get.Service
	cap_alerts_get.Service
}

type ServiceAssignment interface {
	shift_assign_post.Service
	shift_unassign_post.Service
}

type ServiceDrivingLog interface {
	driving_log_post.Service
}

type ServiceSuggestion interface {
	suggestions_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	routesClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCapAlertsInterval,

		provideEmployeeRepository,
		provideShiftRepository,
		provideAssignmentRepository,
		provideDrivingLogRepository,
		provideAvailabilityRepository,
		provideSuggestionRepository,

		provideRoutesGateway,

		provideServiceEmployee,
		provideServiceShift,
		provideServiceAvailability,
		provideServiceAssignment,
		provideServiceDrivingLog,
		provideServiceSuggestion,
		week_window.New,

		provideCapAlertsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceEmployee), new(*employeeService.Employee)),
		wire.Bind(new(ServiceShift), new(*shiftService.Shift)),
		wire.Bind(new(ServiceAvailability), new(*availabilityService.Availability)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceDrivingLog), new(*drivinglogService.DrivingLog)),
		wire.Bind(new(ServiceSuggestion), new(*suggestionService.Suggestion)),

		wire.Bind(new(employeeService.Repository), new(*employeeRepo.Repository)),
		wire.Bind(new(shiftService.Repository), new(*shiftRepo.Repository)),
		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(drivinglogService.Repository), new(*drivinglogRepo.Repository)),
		wire.Bind(new(availabilityService.Repository), new(*availabilityRepo.Repository)),
		wire.Bind(new(suggestionService.Repository), new(*suggestionRepo.Repository)),

		wire.Bind(new(shiftService.RouteGateway), new(*routesGateway.RoutesGateway)),
		wire.Bind(new(availabilityService.EmployeeService), new(*employeeService.Employee)),
		wire.Bind(new(availabilityService.ShiftService), new(*shiftService.Shift)),
		wire.Bind(new(assignmentService.AvailabilityService), new(*availabilityService.Availability)),
		wire.Bind(new(assignmentService.ShiftService), new(*shiftService.Shift)),
		wire.Bind(new(suggestionService.WeekWindowFactory), new(*week_window.WeekWindowFactory)),

		wire.Bind(new(employeeService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shiftService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(cap_alerts.Service), new(*availabilityService.Availability)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	EventService *shifteventService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shift-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	routesClient *http.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideEmployeeRepository,
		provideShiftRepository,
		provideAssignmentRepository,
		provideDrivingLogRepository,
		provideAvailabilityRepository,

		provideRoutesGateway,

		provideServiceEmployee,
		provideServiceShift,
		provideServiceAvailability,
		provideServiceAssignment,
		provideServiceDrivingLog,

		provideEventHandlerFactory,
		provideServiceShiftEvent,

		wire.Bind(new(employeeService.Repository), new(*employeeRepo.Repository)),
		wire.Bind(new(shiftService.Repository), new(*shiftRepo.Repository)),
		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(drivinglogService.Repository), new(*drivinglogRepo.Repository)),
		wire.Bind(new(availabilityService.Repository), new(*availabilityRepo.Repository)),

		wire.Bind(new(shiftService.RouteGateway), new(*routesGateway.RoutesGateway)),
		wire.Bind(new(availabilityService.EmployeeService), new(*employeeService.Employee)),
		wire.Bind(new(availabilityService.ShiftService), new(*shiftService.Shift)),
		wire.Bind(new(assignmentService.AvailabilityService), new(*availabilityService.Availability)),
		wire.Bind(new(assignmentService.ShiftService), new(*shiftService.Shift)),

		wire.Bind(new(shifteventService.AssignmentService), new(*assignmentService.Assignment)),
		wire.Bind(new(shifteventService.DrivingLogService), new(*drivinglogService.DrivingLog)),
		wire.Bind(new(shifteventService.HandlerFactory), new(*shift_event_handle.EventHandlerFactory)),

		wire.Bind(new(employeeService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shiftService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideEmployeeRepository(querier *querier.Querier) *employeeRepo.Repository {
	return employeeRepo.New(querier)
}

func provideShiftRepository(querier *querier.Querier) *shiftRepo.Repository {
	return shiftRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideDrivingLogRepository(querier *querier.Querier) *drivinglogRepo.Repository {
	return drivinglogRepo.New(querier)
}

func provideAvailabilityRepository(querier *querier.Querier) *availabilityRepo.Repository {
	return availabilityRepo.New(querier)
}

func provideSuggestionRepository(querier *querier.Querier) *suggestionRepo.Repository {
	return suggestionRepo.New(querier)
}

func provideRoutesGateway(client *http.Client, cfg *config.Config) *routesGateway.RoutesGateway {
	return routesGateway.New(client, cfg.RoutesCatalog.BaseURL)
}

func provideServiceEmployee(
	repository employeeService.Repository,
	txManager employeeService.TxManager,
) *employeeService.Employee {
	return employeeService.New(repository, txManager)
}

func provideServiceShift(
	repository shiftService.Repository,
	routeGateway shiftService.RouteGateway,
	txManager shiftService.TxManager,
) *shiftService.Shift {
	return shiftService.New(repository, routeGateway, txManager)
}

func provideServiceAvailability(
	repository availabilityService.Repository,
	employees availabilityService.EmployeeService,
	shifts availabilityService.ShiftService,
) *availabilityService.Availability {
	return availabilityService.New(repository, employees, shifts)
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	availability assignmentService.AvailabilityService,
	shifts assignmentService.ShiftService,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(repository, availability, shifts, txManager)
}

func provideServiceDrivingLog(
	repository drivinglogService.Repository,
) *drivinglogService.DrivingLog {
	return drivinglogService.New(repository)
}

func provideServiceSuggestion(
	repository suggestionService.Repository,
	weekFactory suggestionService.WeekWindowFactory,
	cfg *config.Config,
) *suggestionService.Suggestion {
	return suggestionService.New(repository, weekFactory, cfg.Suggestions.MinCoverage)
}

func provideEventHandlerFactory(
	assignment shifteventService.AssignmentService,
	drivingLog shifteventService.DrivingLogService,
) *shift_event_handle.EventHandlerFactory {
	return shift_event_handle.NewEventHandlerFactory(assignment, drivingLog)
}

func provideServiceShiftEvent(
	handlerFactory shifteventService.HandlerFactory,
) *shifteventService.Service {
	return shifteventService.New(handlerFactory)
}

func provideCapAlertsInterval(cfg *config.Config) CapAlertsInterval {
	return CapAlertsInterval(cfg.Tasks.CapAlertsPublishInterval)
}

func provideCapAlertsTask(
	log logger.Logger,
	availability cap_alerts.Service,
	interval CapAlertsInterval,
) *cap_alerts.CapAlerts {
	return cap_alerts.NewCapAlerts(log, availability, time.Duration(interval))
}

func provideTaskList(
	capAlertsTask *cap_alerts.CapAlerts,
) []background.Task {
	return []background.Task{
		capAlertsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

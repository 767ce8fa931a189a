package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/casbin/casbin"
	"github.com/go-redis/redis"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/Warsame-Adam/skystream-api/casbinAuthorization"
	"github.com/Warsame-Adam/skystream-api/handlers"
	application "github.com/Warsame-Adam/skystream-api/service"
	"github.com/Warsame-Adam/skystream-api/startup/config"
	"github.com/Warsame-Adam/skystream-api/store"
)

var Logger = logrus.New()

type Server struct {
	config *config.Config
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func initLogger() {
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	Logger.SetOutput(os.Stdout)
}

func (server *Server) initMongoClient(httpClient *http.Client) *mongo.Client {
	client, err := store.GetClientWithHTTPConfig(server.config.DBHost, server.config.DBPort, httpClient)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initRedisClient() *redis.Client {
	return store.GetRedisClient(server.config.CacheHost, server.config.CachePort)
}

func (server *Server) Start() {

	initLogger()

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     10,
		},
	}

	mongoClient := server.initMongoClient(httpClient)
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}(mongoClient, context.Background())

	redisClient := server.initRedisClient()

	ctx := context.Background()
	exp, err := newExporter(server.config.JaegerAddress)
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}

	tp := newTraceProvider(exp)
	defer func() { _ = tp.Shutdown(ctx) }()
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer("booking_service")
	otel.SetTextMapPropagator(propagation.TraceContext{})

	cityStore := store.NewCityMongoDBStore(mongoClient, tracer, Logger)
	airportStore := store.NewAirportMongoDBStore(mongoClient, tracer, Logger)
	airlineStore := store.NewAirlineMongoDBStore(mongoClient, tracer, Logger)
	classTypeStore := store.NewClassTypeMongoDBStore(mongoClient, tracer, Logger)
	flightStore := store.NewFlightMongoDBStore(mongoClient, tracer, Logger)
	hotelStore := store.NewHotelMongoDBStore(mongoClient, tracer, Logger)
	userStore := store.NewUserMongoDBStore(mongoClient, tracer, Logger)
	roleStore := store.NewRoleMongoDBStore(mongoClient, tracer, Logger)
	tokenCache := store.NewTokenRedisCache(redisClient, tracer, Logger)

	assetChecker := application.NewAssetChecker(Logger)
	resolver := application.NewReferenceResolver(cityStore, airlineStore, classTypeStore, tracer)

	flightService := application.NewFlightService(flightStore, airportStore, resolver, assetChecker, tracer, Logger)
	hotelService := application.NewHotelService(hotelStore, cityStore, assetChecker, tracer, Logger)
	cityService := application.NewCityService(cityStore, flightStore, hotelStore, tracer, Logger)
	airportService := application.NewAirportService(airportStore, flightStore, tracer, Logger)
	airlineService := application.NewAirlineService(airlineStore, flightStore, assetChecker, tracer, Logger)
	classTypeService := application.NewClassTypeService(classTypeStore, flightStore, tracer, Logger)
	roleService := application.NewRoleService(roleStore, userStore, tracer, Logger)
	userService := application.NewUserService(userStore, flightStore, tracer, Logger)
	authService := application.NewAuthService(userStore, roleStore, tokenCache, tracer, Logger)

	server.seed(ctx, roleService, classTypeService)

	flightHandler := handlers.NewFlightHandler(flightService, tracer, Logger)
	hotelHandler := handlers.NewHotelHandler(hotelService, tracer, Logger)
	cityHandler := handlers.NewCityHandler(cityService, tracer, Logger)
	airportHandler := handlers.NewAirportHandler(airportService, tracer, Logger)
	airlineHandler := handlers.NewAirlineHandler(airlineService, tracer, Logger)
	classTypeHandler := handlers.NewClassTypeHandler(classTypeService, tracer, Logger)
	roleHandler := handlers.NewRoleHandler(roleService, tracer, Logger)
	userHandler := handlers.NewUserHandler(userService, authService, tracer, Logger)
	authHandler := handlers.NewAuthHandler(authService, tracer, Logger)

	server.start(
		flightHandler, hotelHandler, cityHandler, airportHandler,
		airlineHandler, classTypeHandler, roleHandler, userHandler, authHandler,
	)
}

// seed makes sure the built-in roles and fare classes exist. Failures are
// logged and the server still comes up, reads keep working without them.
func (server *Server) seed(ctx context.Context, roles *application.RoleService, classTypes *application.ClassTypeService) {
	seedCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := roles.EnsureDefaultRoles(seedCtx); err != nil {
		Logger.Errorf("role seeding incomplete: %s", err)
	}
	if err := classTypes.EnsureDefaultClassTypes(seedCtx); err != nil {
		Logger.Errorf("class type seeding incomplete: %s", err)
	}
}

type routeHandler interface {
	Init(router *mux.Router)
}

func (server *Server) start(routeHandlers ...routeHandler) {
	enforcer, err := casbin.NewEnforcerSafe("./rbac_model.conf", "./policy.csv")
	if err != nil {
		log.Fatal(err)
	}

	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(handlers.ExtractTraceInfoMiddleware)
	for _, handler := range routeHandlers {
		handler.Init(router)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", server.config.Port),
		Handler:      casbinAuthorization.CasbinMiddleware(enforcer)(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	wait := time.Second * 15
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func newExporter(address string) (*jaeger.Exporter, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(address)))
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("booking_service"),
		),
	)

	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(rw, h)
	})
}

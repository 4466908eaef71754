package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/achievements"
	"github.com/youpower/youpower-api/api"
	"github.com/youpower/youpower-api/config"
	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/mailer"
	"github.com/youpower/youpower-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Hub      *NotificationHub
	Mailer   mailer.Mailer
	client   databases.ClientHelper
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	udb := databases.NewUserDatabase(a.dbHelper)
	adb := databases.NewActionDatabase(a.dbHelper)
	cdb := databases.NewCommunityDatabase(a.dbHelper)
	acdb := databases.NewActionCommentDatabase(a.dbHelper)
	ccdb := databases.NewCommunityCommentDatabase(a.dbHelper)
	ldb := databases.NewLogDatabase(a.dbHelper)

	if a.Hub == nil {
		a.Hub = NewNotificationHub()
	}
	if a.Mailer == nil {
		a.Mailer = mailer.New(&a.Config)
	}
	ach := achievements.Updater{DB: udb, Notifier: a.Hub}

	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: udb}
	m.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.RecoveryMiddleware, api.LoggingMiddleware, api.CorsMiddleware)

	u := User{DB: udb, ADB: adb, LDB: ldb, Achievements: ach}
	act := Action{DB: adb, CDB: acdb, UDB: udb, ComDB: cdb, LDB: ldb, Achievements: ach}
	actComments := Comment{
		DB:            acdb,
		UDB:           udb,
		LDB:           ldb,
		Achievements:  ach,
		Category:      "action",
		ParentVar:     "action_id",
		ParentVisible: func(ctx context.Context, id primitive.ObjectID, _ string) error {
			_, err := adb.FindOne(ctx, bson.M{"_id": id})
			return err
		},
	}
	c := Community{DB: cdb, CDB: ccdb, ADB: adb, UDB: udb, LDB: ldb}
	comComments := Comment{
		DB:            ccdb,
		UDB:           udb,
		LDB:           ldb,
		Achievements:  ach,
		Category:      "community",
		ParentVar:     "community_id",
		ParentVisible: c.Visible,
	}
	coop := Cooperative{DB: databases.NewCooperativeDatabase(a.dbHelper), LDB: ldb}
	h := Household{
		DB:       databases.NewHouseholdDatabase(a.dbHelper),
		UDB:      udb,
		LDB:      ldb,
		Mailer:   a.Mailer,
		Notifier: a.Hub,
		Secret:   []byte(a.Config.SecretKey),
		BaseURL:  a.Config.BaseURL,
	}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// websocket upgrades cannot go through the timeout handler
	r.Handle("/ws/notifications", tokenFromQuery(api.Middleware(http.HandlerFunc(a.Hub.HandleNotificationsWebSocket)))).Methods("GET")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(a.Config.RequestTimeout))

	apiCreate.Handle("/user/register", http.HandlerFunc(u.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/action", api.Middleware(http.HandlerFunc(act.CreateActionHandler))).Methods("POST")
	apiCreate.Handle("/actions", api.Middleware(http.HandlerFunc(act.ActionsHandler))).Methods("GET")
	apiCreate.Handle("/action/search", api.Middleware(http.HandlerFunc(act.SearchActionsHandler))).Methods("GET")
	apiCreate.Handle("/action/suggested", api.Middleware(http.HandlerFunc(act.SuggestedActionsHandler))).Methods("GET")
	apiCreate.Handle("/action/rate/{action_id}", api.Middleware(http.HandlerFunc(act.RateActionHandler))).Methods("PUT")
	apiCreate.Handle("/action/{action_id}", api.Middleware(http.HandlerFunc(act.ActionByIDHandler))).Methods("GET")
	apiCreate.Handle("/action/{action_id}", api.Middleware(http.HandlerFunc(act.UpdateActionHandler))).Methods("PUT")
	apiCreate.Handle("/action/{action_id}", api.Middleware(http.HandlerFunc(act.DeleteActionHandler))).Methods("DELETE")
	apiCreate.Handle("/action/{action_id}/comments", api.Middleware(http.HandlerFunc(actComments.CommentsHandler))).Methods("GET")
	apiCreate.Handle("/action/{action_id}/comments", api.Middleware(http.HandlerFunc(actComments.CreateCommentHandler))).Methods("POST")
	apiCreate.Handle("/action/{action_id}/comments/{comment_id}", api.Middleware(http.HandlerFunc(actComments.DeleteCommentHandler))).Methods("DELETE")
	apiCreate.Handle("/action/{action_id}/comments/{comment_id}/rate", api.Middleware(http.HandlerFunc(actComments.RateCommentHandler))).Methods("PUT")

	apiCreate.Handle("/user/profile", api.Middleware(http.HandlerFunc(u.ProfileHandler))).Methods("GET")
	apiCreate.Handle("/user/profile", api.Middleware(http.HandlerFunc(u.UpdateProfileHandler))).Methods("PUT")
	apiCreate.Handle("/user/search", api.Middleware(http.HandlerFunc(u.SearchUsersHandler))).Methods("GET")
	apiCreate.Handle("/user/actions", api.Middleware(http.HandlerFunc(u.UserActionsHandler))).Methods("GET")
	apiCreate.Handle("/user/achievements", api.Middleware(http.HandlerFunc(u.AchievementsHandler))).Methods("GET")
	apiCreate.Handle("/user/action/{action_id}", api.Middleware(http.HandlerFunc(u.SetActionStateHandler))).Methods("PUT")
	apiCreate.Handle("/user/{user_id}", api.Middleware(http.HandlerFunc(u.UserByIDHandler))).Methods("GET")

	apiCreate.Handle("/community", api.Middleware(http.HandlerFunc(c.CreateCommunityHandler))).Methods("POST")
	apiCreate.Handle("/communities", api.Middleware(http.HandlerFunc(c.CommunitiesHandler))).Methods("GET")
	apiCreate.Handle("/community/rate/{community_id}", api.Middleware(http.HandlerFunc(c.RateCommunityHandler))).Methods("PUT")
	apiCreate.Handle("/community/{community_id}", api.Middleware(http.HandlerFunc(c.CommunityHandler))).Methods("GET")
	apiCreate.Handle("/community/{community_id}", api.Middleware(http.HandlerFunc(c.DeleteCommunityHandler))).Methods("DELETE")
	apiCreate.Handle("/community/{community_id}/member/{user_id}", api.Middleware(http.HandlerFunc(c.AddMemberHandler))).Methods("PUT")
	apiCreate.Handle("/community/{community_id}/member/{user_id}", api.Middleware(http.HandlerFunc(c.RemoveMemberHandler))).Methods("DELETE")
	apiCreate.Handle("/community/{community_id}/action/{action_id}", api.Middleware(http.HandlerFunc(c.AddActionHandler))).Methods("PUT")
	apiCreate.Handle("/community/{community_id}/action/{action_id}", api.Middleware(http.HandlerFunc(c.RemoveActionHandler))).Methods("DELETE")
	apiCreate.Handle("/community/{community_id}/challenge", api.Middleware(http.HandlerFunc(c.CreateChallengeHandler))).Methods("POST")
	apiCreate.Handle("/community/{community_id}/comments", api.Middleware(http.HandlerFunc(comComments.CommentsHandler))).Methods("GET")
	apiCreate.Handle("/community/{community_id}/comments", api.Middleware(http.HandlerFunc(comComments.CreateCommentHandler))).Methods("POST")
	apiCreate.Handle("/community/{community_id}/comments/{comment_id}", api.Middleware(http.HandlerFunc(comComments.DeleteCommentHandler))).Methods("DELETE")
	apiCreate.Handle("/community/{community_id}/comments/{comment_id}/rate", api.Middleware(http.HandlerFunc(comComments.RateCommentHandler))).Methods("PUT")

	apiCreate.Handle("/cooperative", api.Middleware(http.HandlerFunc(coop.CreateCooperativeHandler))).Methods("POST")
	apiCreate.Handle("/cooperatives", api.Middleware(http.HandlerFunc(coop.CooperativesHandler))).Methods("GET")
	apiCreate.Handle("/cooperative/{cooperative_id}", api.Middleware(http.HandlerFunc(coop.CooperativeHandler))).Methods("GET")
	apiCreate.Handle("/cooperative/{cooperative_id}", api.Middleware(http.HandlerFunc(coop.UpdateCooperativeHandler))).Methods("PUT")
	apiCreate.Handle("/cooperative/{cooperative_id}/action", api.Middleware(http.HandlerFunc(coop.AddActionHandler))).Methods("POST")
	apiCreate.Handle("/cooperative/{cooperative_id}/action/{sub_id}", api.Middleware(http.HandlerFunc(coop.UpdateActionHandler))).Methods("PUT")
	apiCreate.Handle("/cooperative/{cooperative_id}/action/{sub_id}", api.Middleware(http.HandlerFunc(coop.DeleteActionHandler))).Methods("DELETE")

	apiCreate.Handle("/household", api.Middleware(http.HandlerFunc(h.CreateHouseholdHandler))).Methods("POST")
	apiCreate.Handle("/household/invite/respond", api.Middleware(http.HandlerFunc(h.RespondInviteHandler))).Methods("POST")
	apiCreate.Handle("/household/{household_id}", api.Middleware(http.HandlerFunc(h.HouseholdHandler))).Methods("GET")
	apiCreate.Handle("/household/{household_id}", api.Middleware(http.HandlerFunc(h.UpdateHouseholdHandler))).Methods("PUT")
	apiCreate.Handle("/household/{household_id}", api.Middleware(http.HandlerFunc(h.DeleteHouseholdHandler))).Methods("DELETE")
	apiCreate.Handle("/household/{household_id}/invite", api.Middleware(http.HandlerFunc(h.InviteHandler))).Methods("POST")
	apiCreate.Handle("/household/{household_id}/member/{user_id}", api.Middleware(http.HandlerFunc(h.RemoveMemberHandler))).Methods("DELETE")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	zap.S().Info("youpower-api has connected to the database")

	if err := a.Users().EnsureIndexes(ctx); err != nil {
		// existing duplicate emails block the index, registration still checks first
		zap.S().Errorw("failed to create user indexes", "error", err)
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

// UseDatabase wires an already connected database helper, bypassing Initialize
func (a *App) UseDatabase(db databases.DatabaseHelper) {
	a.dbHelper = db
	a.initializeRoutes()
}

// Users returns the user store backed by the app's database
func (a *App) Users() databases.UserDatabase {
	return databases.NewUserDatabase(a.dbHelper)
}

// Close disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// tokenFromQuery lets browser websocket clients, which cannot set headers,
// pass their bearer token as ?token=
func tokenFromQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.URL.Query().Get("token"); token != "" && r.Header.Get("Authorization") == "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

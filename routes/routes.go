package routes

import (
	"github.com/copaops/copa-system/handlers"
	"github.com/copaops/copa-system/middleware"
	"github.com/copaops/copa-system/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes wires every handler into the router. Reads are public;
// mutations require an authenticated organizer or admin token.
func SetupRoutes(
	router *chi.Mux,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	phaseHandler *handlers.PhaseHandler,
	groupHandler *handlers.GroupHandler,
	teamHandler *handlers.TeamHandler,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	goalHandler *handlers.GoalHandler,
	standingsHandler *handlers.StandingsHandler,
	playerStatsHandler *handlers.PlayerStatsHandler,
	teamStatsHandler *handlers.TeamStatsHandler,
	jwtSecret []byte,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)
	requireOrganizer := middleware.RequireRole(models.RoleOrganizer, models.RoleAdmin)
	requireAdmin := middleware.RequireRole(models.RoleAdmin)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListTournaments)
		r.Get("/{tournamentID}", tournamentHandler.GetTournamentByID)
		r.Get("/{tournamentID}/phases", phaseHandler.ListTournamentPhases)
		r.Get("/{tournamentID}/matches", matchHandler.ListTournamentMatches)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireOrganizer)

			r.Post("/", tournamentHandler.CreateTournament)
			r.Put("/{tournamentID}", tournamentHandler.UpdateTournament)
			r.Post("/{tournamentID}/logo", tournamentHandler.UploadLogo)
			r.With(requireAdmin).Delete("/{tournamentID}", tournamentHandler.DeleteTournament)
		})
	})

	router.Route("/phases", func(r chi.Router) {
		r.Get("/{phaseID}", phaseHandler.GetPhaseByID)
		r.Get("/{phaseID}/groups", groupHandler.ListPhaseGroups)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireOrganizer)

			r.Post("/", phaseHandler.CreatePhase)
			r.Put("/{phaseID}", phaseHandler.UpdatePhase)
			r.With(requireAdmin).Delete("/{phaseID}", phaseHandler.DeletePhase)
		})
	})

	router.Route("/groups", func(r chi.Router) {
		r.Get("/{groupID}", groupHandler.GetGroupByID)
		r.Get("/{groupID}/matches", groupHandler.ListGroupMatches)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireOrganizer)

			r.Post("/", groupHandler.CreateGroup)
			r.Put("/{groupID}", groupHandler.UpdateGroup)
			r.With(requireAdmin).Delete("/{groupID}", groupHandler.DeleteGroup)
			r.Post("/{groupID}/teams/{teamID}", groupHandler.AddTeam)
			r.Delete("/{groupID}/teams/{teamID}", groupHandler.RemoveTeam)
			r.Post("/{groupID}/fixtures", groupHandler.GenerateFixtures)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.ListTeams)
		r.Get("/{teamID}", teamHandler.GetTeamByID)
		r.Get("/{teamID}/players", teamHandler.ListTeamPlayers)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireOrganizer)

			r.Post("/", teamHandler.CreateTeam)
			r.Put("/{teamID}", teamHandler.UpdateTeam)
			r.Post("/{teamID}/logo", teamHandler.UploadLogo)
			r.With(requireAdmin).Delete("/{teamID}", teamHandler.DeleteTeam)
		})
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/{playerID}", playerHandler.GetPlayerByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireOrganizer)

			r.Post("/", playerHandler.CreatePlayer)
			r.Put("/{playerID}", playerHandler.UpdatePlayer)
			r.With(requireAdmin).Delete("/{playerID}", playerHandler.DeletePlayer)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", matchHandler.GetMatchByID)
		r.Get("/{matchID}/goals", matchHandler.ListMatchGoals)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireOrganizer)

			r.Post("/", matchHandler.CreateMatch)
			r.Put("/{matchID}", matchHandler.UpdateMatch)
			r.Put("/{matchID}/status", matchHandler.UpdateMatchStatus)
			r.With(requireAdmin).Delete("/{matchID}", matchHandler.DeleteMatch)
		})
	})

	router.Route("/goals", func(r chi.Router) {
		r.Get("/{goalID}", goalHandler.GetGoalByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireOrganizer)

			r.Post("/", goalHandler.RecordGoal)
			r.With(requireAdmin).Delete("/{goalID}", goalHandler.DeleteGoal)
		})
	})

	router.Get("/standings/group/{groupID}", standingsHandler.GetGroupStandings)

	router.Route("/player-stats", func(r chi.Router) {
		r.Get("/", playerStatsHandler.ListPlayerStats)
		r.Get("/top-scorers/{tournamentID}", playerStatsHandler.TopScorers)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireOrganizer)

			r.Post("/update-from-goals", playerStatsHandler.UpdateFromGoals)
		})
	})

	router.Route("/team-stats", func(r chi.Router) {
		r.Get("/", teamStatsHandler.ListTeamStats)
		r.Get("/tournament/{tournamentID}", teamStatsHandler.RankedByTournament)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireOrganizer)

			r.Post("/update/{teamID}/{tournamentID}", teamStatsHandler.UpdateFromMatches)
		})
	})
}

// Package docs YouPower API.
//
// Documentation of the YouPower energy-saving actions API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - basic
//     - bearer
//
//    SecurityDefinitions:
//    basic:
//      type: basic
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/youpower/youpower-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/action/{action_id} action actionByID
// Gets a single action with its ratings reduced and comment count.
// responses:
//   200: actionByIDResponse

// Shows a single action by the given {action_id}
// swagger:response actionByIDResponse
type actionByIDResponseWrapper struct {
	// in:body
	Body models.ActionResponse
}

// swagger:route GET /api/v1/community/{community_id} community communityByID
// Gets a single community by ID.
// responses:
//   200: communityByIDResponse

// Shows a single community by the given {community_id}
// swagger:response communityByIDResponse
type communityByIDResponseWrapper struct {
	// in:body
	Body models.CommunityResponse
}

// swagger:route GET /api/v1/user/profile user userProfile
// Gets the profile of the authenticated user.
// responses:
//   200: userProfileResponse

// Shows the authenticated user
// swagger:response userProfileResponse
type userProfileResponseWrapper struct {
	// in:body
	Body models.User
}

// swagger:route GET /api/v1/household/{household_id} household householdByID
// Gets a household the caller belongs to or is invited to.
// responses:
//   200: householdByIDResponse

// Shows a single household by the given {household_id}
// swagger:response householdByIDResponse
type householdByIDResponseWrapper struct {
	// in:body
	Body models.Household
}

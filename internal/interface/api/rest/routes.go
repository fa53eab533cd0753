package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth            = RouteApiV1 + "/auth"
	RouteRegister        = RouteAuth + "/register"
	RouteLogin           = RouteAuth + "/login"
	RouteUploadIDPicture = RouteAuth + "/upload-id-picture"

	// uploads
	RouteUploads     = RouteApiV1 + "/uploads"
	RouteIDPicture   = RouteUploads + "/id-pictures/:filename"
	RouteMyFiles     = RouteUploads + "/my-files"
	RouteUploadStats = RouteUploads + "/stats"
	RouteUploadFile  = RouteUploads + "/:filename"

	// users
	RouteUsers       = RouteApiV1 + "/users"
	RouteUser        = RouteUsers + "/:user_id"
	RouteUserApprove = RouteUser + "/approve"
	RouteUserReject  = RouteUser + "/reject"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)

package rest

const (
	// auth
	RouteRegister = "/register"
	RouteLogin    = "/login"

	// files
	RouteUpload = "/upload"
	RouteDelete = "/delete/:file_id"
	RouteFiles  = "/files"
	RouteFile   = RouteFiles + "/:file_id"

	RouteMe = "/me"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)

package rbac

// Simple default policy. Staff run imports and read reports; user
// management stays admin-only.
var RolePermissions = map[string][]string{
	"staff": {
		"customers:view",
		"report:view",
		"csv:import",
	},
	"admin": {
		"*", // everything
	},
}

package rbac

// Catalog lists every resource:action pair checked by the API. Roles are
// built per company from these rows.
var Catalog = []PermissionRow{
	{Resource: "employee", Action: "read", Label: "View employees", Category: "HR"},
	{Resource: "employee", Action: "create", Label: "Create employees", Category: "HR"},
	{Resource: "employee", Action: "update", Label: "Edit employees", Category: "HR"},
	{Resource: "employee", Action: "delete", Label: "Delete employees", Category: "HR"},
	{Resource: "salary", Action: "read", Label: "View salaries", Category: "HR"},
	{Resource: "salary", Action: "update", Label: "Edit salaries", Category: "HR"},
	{Resource: "attendance", Action: "read", Label: "View own attendance", Category: "HR"},
	{Resource: "attendance", Action: "read_all", Label: "View all attendance", Category: "HR"},
	{Resource: "attendance", Action: "create", Label: "Record attendance", Category: "HR"},
	{Resource: "payroll", Action: "read", Label: "View payrolls", Category: "Payroll"},
	{Resource: "payroll", Action: "create", Label: "Calculate payrolls", Category: "Payroll"},
	{Resource: "payroll", Action: "approve", Label: "Process payrolls", Category: "Payroll"},
	{Resource: "payroll", Action: "pay", Label: "Mark payrolls paid", Category: "Payroll"},
	{Resource: "payroll", Action: "delete", Label: "Delete draft payrolls", Category: "Payroll"},
	{Resource: "evaluation", Action: "read", Label: "View evaluations", Category: "Evaluation"},
	{Resource: "evaluation", Action: "create", Label: "Create evaluations", Category: "Evaluation"},
	{Resource: "evaluation", Action: "update", Label: "Edit evaluations", Category: "Evaluation"},
	{Resource: "evaluation", Action: "review", Label: "Review evaluations", Category: "Evaluation"},
	{Resource: "evaluation", Action: "approve", Label: "Approve evaluations", Category: "Evaluation"},
	{Resource: "evaluation", Action: "delete", Label: "Delete draft evaluations", Category: "Evaluation"},
	{Resource: "property", Action: "read", Label: "View properties", Category: "Inventory"},
	{Resource: "property", Action: "create", Label: "Create properties", Category: "Inventory"},
	{Resource: "property", Action: "update", Label: "Edit properties", Category: "Inventory"},
	{Resource: "property", Action: "delete", Label: "Delete properties", Category: "Inventory"},
	{Resource: "room_type", Action: "read", Label: "View room types", Category: "Inventory"},
	{Resource: "room_type", Action: "create", Label: "Create room types", Category: "Inventory"},
	{Resource: "room_type", Action: "update", Label: "Edit room types", Category: "Inventory"},
	{Resource: "room_type", Action: "delete", Label: "Delete room types", Category: "Inventory"},
	{Resource: "amenity", Action: "read", Label: "View amenities", Category: "Inventory"},
	{Resource: "amenity", Action: "create", Label: "Create amenities", Category: "Inventory"},
	{Resource: "amenity", Action: "update", Label: "Edit amenities", Category: "Inventory"},
	{Resource: "amenity", Action: "delete", Label: "Delete amenities", Category: "Inventory"},
	{Resource: "room", Action: "read", Label: "View rooms", Category: "Inventory"},
	{Resource: "room", Action: "create", Label: "Create rooms", Category: "Inventory"},
	{Resource: "room", Action: "update", Label: "Edit rooms", Category: "Inventory"},
	{Resource: "room", Action: "change_status", Label: "Change room status", Category: "Housekeeping"},
	{Resource: "room", Action: "delete", Label: "Delete rooms", Category: "Inventory"},
	{Resource: "photo", Action: "read", Label: "View photos", Category: "Inventory"},
	{Resource: "photo", Action: "create", Label: "Upload photos", Category: "Inventory"},
	{Resource: "photo", Action: "update", Label: "Set primary photos", Category: "Inventory"},
	{Resource: "photo", Action: "delete", Label: "Delete photos", Category: "Inventory"},
	{Resource: "role", Action: "read", Label: "View roles", Category: "Access"},
	{Resource: "role", Action: "manage", Label: "Create and assign roles", Category: "Access"},
}

func catalogKeys() map[PermissionKey]bool {
	keys := make(map[PermissionKey]bool, len(Catalog))
	for _, p := range Catalog {
		keys[PermissionKey{Resource: p.Resource, Action: p.Action}] = true
	}
	return keys
}

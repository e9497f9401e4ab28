package rbac

// CheckPermissionRequest asks whether the caller holds resource:action.
type CheckPermissionRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Analyst permissions
	PermissionComplianceAnalyze = "compliance:analyze"
	PermissionRiskScore         = "risk:score"
	PermissionFraudDetect       = "fraud:detect"
	PermissionReportGenerate    = "report:generate"
	PermissionDashboardRead     = "dashboard:read"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID      uint     `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "admin":
		return []string{
			PermissionComplianceAnalyze,
			PermissionRiskScore,
			PermissionFraudDetect,
			PermissionReportGenerate,
			PermissionDashboardRead,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case "analyst":
		return []string{
			PermissionComplianceAnalyze,
			PermissionRiskScore,
			PermissionFraudDetect,
			PermissionReportGenerate,
			PermissionDashboardRead,
		}
	default:
		return []string{}
	}
}

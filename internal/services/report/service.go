// Package report serves the regulatory reporting surface. The metrics
// are demo data with no backing store; the shapes match what the
// reporting UI renders.
package report

import "time"

const timestampLayout = "2006-01-02T15:04"

// Metrics is the fixed demo metric block embedded in generated reports.
type Metrics struct {
	ComplianceDistribution map[string]int `json:"complianceDistribution"`
	RiskDistribution       map[string]int `json:"riskDistribution"`
	TotalLoans             int            `json:"totalLoans"`
	FraudDetected          int            `json:"fraudDetected"`
}

// Report is a generated regulatory report.
type Report struct {
	Type             string  `json:"type"`
	Period           string  `json:"period"`
	Metrics          Metrics `json:"metrics"`
	CreatedAt        string  `json:"createdAt"`
	InstitutionName  string  `json:"institutionName"`
	CertifiedBy      string  `json:"certifiedBy"`
	Notes            string  `json:"notes"`
	RemedialMeasures string  `json:"remedialMeasures"`
}

// GenerateResult wraps a report in the success envelope the UI expects.
type GenerateResult struct {
	Success bool   `json:"success"`
	Report  Report `json:"report"`
}

// SubmissionResult is the simulated regulator submission receipt.
type SubmissionResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
}

// Request carries the caller-supplied report parameters; absent fields
// fall back to demo defaults.
type Request struct {
	ReportType       string `json:"reportType"`
	ReportPeriod     string `json:"reportPeriod"`
	InstitutionName  string `json:"institutionName"`
	CertifiedBy      string `json:"certifiedBy"`
	Notes            string `json:"notes"`
	RemedialMeasures string `json:"remedialMeasures"`
}

type Service interface {
	Generate(req Request) *GenerateResult
	SubmitRBI() *SubmissionResult
}

type service struct {
	now func() time.Time
}

func NewService() Service {
	return &service{now: time.Now}
}

func (s *service) Generate(req Request) *GenerateResult {
	if req.ReportType == "" {
		req.ReportType = "compliance"
	}
	if req.ReportPeriod == "" {
		req.ReportPeriod = "monthly"
	}
	if req.InstitutionName == "" {
		req.InstitutionName = "Demo Fintech"
	}
	if req.CertifiedBy == "" {
		req.CertifiedBy = "Compliance Officer"
	}

	return &GenerateResult{
		Success: true,
		Report: Report{
			Type:   req.ReportType,
			Period: req.ReportPeriod,
			Metrics: Metrics{
				ComplianceDistribution: map[string]int{
					"compliant":    80,
					"partial":      10,
					"nonCompliant": 10,
				},
				RiskDistribution: map[string]int{
					"low":    50,
					"medium": 30,
					"high":   20,
				},
				TotalLoans:    100,
				FraudDetected: 5,
			},
			CreatedAt:        s.now().Format(timestampLayout),
			InstitutionName:  req.InstitutionName,
			CertifiedBy:      req.CertifiedBy,
			Notes:            req.Notes,
			RemedialMeasures: req.RemedialMeasures,
		},
	}
}

func (s *service) SubmitRBI() *SubmissionResult {
	return &SubmissionResult{
		Success:     true,
		Message:     "Report submitted to RBI successfully",
		SubmittedAt: s.now().Format(timestampLayout),
	}
}

package handler

import (
	"strings"
	"unicode"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

const contactBaseURL = "https://wa.me/"

// --- Request types ---

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=connected declined withdrawn"`
}

type answerRequest struct {
	Status string `json:"status" validate:"required,oneof=connected declined"`
}

// --- Response types ---

type applicationResponse struct {
	*domain.Application
	Job *jobResponse `json:"job,omitempty"`
}

type applicantResponse struct {
	Application *domain.Application     `json:"application"`
	Applicant   domain.ApplicantProfile `json:"applicant"`
	// ContactURL opens a chat with a connected applicant.
	ContactURL string `json:"contact_url,omitempty"`
}

type jobApplicantsResponse struct {
	Job        jobResponse         `json:"job"`
	Applicants []applicantResponse `json:"applicants"`
}

// --- Service result → HTTP response ---

func toApplicationResponse(v ports.ApplicationView) applicationResponse {
	resp := applicationResponse{Application: v.Application}
	if v.Job != nil {
		jr := toJobResponse(*v.Job)
		resp.Job = &jr
	}
	return resp
}

func toApplicationResponses(views []ports.ApplicationView) []applicationResponse {
	out := make([]applicationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toApplicationResponse(v))
	}
	return out
}

func toApplicantResponse(e ports.ApplicantEntry) applicantResponse {
	resp := applicantResponse{Application: e.Application, Applicant: e.Applicant}
	if e.Application.Status == domain.StatusConnected {
		resp.ContactURL = contactURL(e.Applicant.Phone)
	}
	return resp
}

func toJobApplicantsResponse(ja ports.JobApplicants) jobApplicantsResponse {
	applicants := make([]applicantResponse, 0, len(ja.Applicants))
	for _, e := range ja.Applicants {
		applicants = append(applicants, toApplicantResponse(e))
	}
	return jobApplicantsResponse{Job: toJobResponse(ja.Job), Applicants: applicants}
}

// contactURL builds a chat deep link from the digits of phone. Empty when
// phone has no digits.
func contactURL(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	return contactBaseURL + digits
}

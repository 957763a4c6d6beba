package dispatch

import (
	"fmt"
	"net/http"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

const (
	profileUpdatePath = "/job-seeker/update"
	experiencePath    = "/job-seeker/experience"
	educationPath     = "/job-seeker/education"
	certificationPath = "/job-seeker/certification"
)

// collectionPath returns the collection endpoint backing an indexed or add_* kind.
func collectionPath(kind types.EditKind) string {
	switch kind {
	case types.KindExperience, types.KindAddExperience:
		return experiencePath
	case types.KindEducation, types.KindAddEducation:
		return educationPath
	case types.KindCertification, types.KindAddCertification:
		return certificationPath
	default:
		return ""
	}
}

// Endpoint resolves the method and path for an edit kind. Indexed kinds require a
// non-negative index; other kinds ignore it.
func Endpoint(kind types.EditKind, index *int) (method, path string, err error) {
	if !kind.Valid() {
		return "", "", &ContractError{Kind: kind, Message: "unknown edit kind"}
	}

	switch {
	case kind.Creates():
		return http.MethodPost, collectionPath(kind), nil
	case kind.Indexed():
		if index == nil {
			return "", "", &ContractError{Kind: kind, Message: "index is required"}
		}
		if *index < 0 {
			return "", "", &ContractError{Kind: kind, Message: fmt.Sprintf("index %d is negative", *index)}
		}
		return http.MethodPatch, fmt.Sprintf("%s/%d", collectionPath(kind), *index), nil
	default:
		return http.MethodPatch, profileUpdatePath, nil
	}
}

// Resolve turns a form payload into the request that applies it. The body is the
// payload data unchanged.
func Resolve(p types.Payload) (types.UpdateRequest, error) {
	method, path, err := Endpoint(p.Type, p.Index)
	if err != nil {
		return types.UpdateRequest{}, err
	}
	return types.UpdateRequest{Method: method, Endpoint: path, Body: p.Data}, nil
}

// MustResolve is Resolve for callers that treat a routing failure as a bug.
func MustResolve(p types.Payload) types.UpdateRequest {
	req, err := Resolve(p)
	if err != nil {
		panic(err)
	}
	return req
}

package mock

import "github.com/minhdn/jobsift"

var _ jobsift.ContactService = (*ContactService)(nil)

// ContactService is a mock implementation of jobsift.ContactService.
type ContactService struct {
	ExtractContactsFn func(html string) *jobsift.ContactBundle
}

func (s *ContactService) ExtractContacts(html string) *jobsift.ContactBundle {
	return s.ExtractContactsFn(html)
}

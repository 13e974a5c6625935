// Package mocks provides mock implementations for testing the fixnest marketplace.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRequestRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(req, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// Upsert, GetByID, GetByEmail
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/fixnest/marketplace-api/internal/core UserRepository

// Generate mock for JobRequestRepository interface from internal/core package.
// This creates MockJobRequestRepository with methods for all JobRequestRepository interface methods:
// Create, GetByID, ListByCustomer, ListOpenCards, UpdateStatus
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_request_repository_mock.go github.com/fixnest/marketplace-api/internal/core JobRequestRepository

// Generate mock for OfferRepository interface from internal/core package.
// This creates MockOfferRepository with methods for all OfferRepository interface methods:
// Submit, GetByID, ListByJobRequest, ListByProvider, UpdateStatus
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=offer_repository_mock.go github.com/fixnest/marketplace-api/internal/core OfferRepository

// Generate mock for ThreadRepository interface from internal/core package.
// This creates MockThreadRepository with methods for all ThreadRepository interface methods:
// UpsertForJobRequest, GetByID, ListByParticipant, AppendMessage, ListMessages
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=thread_repository_mock.go github.com/fixnest/marketplace-api/internal/core ThreadRepository

// Generate mock for BookingRepository interface from internal/core package.
// This creates MockBookingRepository with methods for all BookingRepository interface methods:
// AcceptOffer, GetByID, ListByParticipant, UpdateStatus, ConfirmSimulatedPayment, GetPaymentByBookingID
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=booking_repository_mock.go github.com/fixnest/marketplace-api/internal/core BookingRepository

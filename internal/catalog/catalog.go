// Package catalog serves the read-mostly data behind the app screens: jobs,
// drivers, transactions and the admin user list. Everything lives in memory
// and is seeded on construction.
package catalog

import (
	"sync"
	"time"

	"github.com/driversetu/driver-setu/pkg/logger"
)

// Catalog is safe for concurrent use
type Catalog struct {
	logger *logger.Logger
	now    func() time.Time

	mu                   sync.RWMutex
	jobs                 []*Job
	ownerJobs            []*OwnerJob
	drivers              []*Driver
	walletTransactions   []*Transaction
	platformTransactions []*PlatformTransaction
	users                []*User
}

// New creates a catalog seeded relative to the current time
func New(log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.NewNop()
	}
	c := &Catalog{logger: log.Named("catalog"), now: time.Now}
	c.seed(c.now())
	return c
}

func (c *Catalog) seed(now time.Time) {
	day := 24 * time.Hour

	c.jobs = []*Job{
		{ID: "1", Title: "Mumbai - Pune Transfer", Owner: "Suresh Patil", Salary: "2,500", Location: "Mumbai", Distance: "148 km", Type: "Long Distance", Status: JobPending, PostedAt: now.Add(-2 * time.Hour)},
		{ID: "2", Title: "Local City Driving", Owner: "Amit Shah", Salary: "1,200", Location: "Pune", Distance: "25 km", Type: "Local", Status: JobPending, PostedAt: now.Add(-4 * time.Hour)},
		{ID: "3", Title: "Airport Pickup", Owner: "Priya Deshmukh", Salary: "800", Location: "Mumbai Airport", Distance: "35 km", Type: "Airport", Status: JobAccepted, PostedAt: now.Add(-day)},
		{ID: "4", Title: "Wedding Car Service", Owner: "Rahul Joshi", Salary: "5,000", Location: "Nashik", Distance: "210 km", Type: "Event", Status: JobCompleted, PostedAt: now.Add(-2 * day)},
		{ID: "5", Title: "Corporate Monthly", Owner: "TechCorp Ltd", Salary: "25,000/mo", Location: "BKC Mumbai", Distance: "15 km", Type: "Monthly", Status: JobCompleted, PostedAt: now.Add(-3 * day)},
	}

	c.ownerJobs = []*OwnerJob{
		{ID: "1", Title: "Mumbai - Pune Transfer", Driver: "Rajesh Kumar", Salary: "2,500", Status: OwnerJobActive, DriverRating: 4.8, PostedAt: now},
		{ID: "2", Title: "Local City Driving", Driver: "Sunil Yadav", Salary: "1,200", Status: OwnerJobActive, DriverRating: 4.6, PostedAt: now.Add(-day)},
		{ID: "3", Title: "Airport Pickup", Driver: "Vikram Singh", Salary: "800", Status: OwnerJobCompleted, DriverRating: 4.9, PostedAt: now.Add(-7 * day)},
		{ID: "4", Title: "Wedding Car Service", Salary: "5,000", Status: OwnerJobPending, PostedAt: now.Add(-9 * day)},
		{ID: "5", Title: "Office Commute Monthly", Driver: "Deepak Pawar", Salary: "25,000/mo", Status: OwnerJobCompleted, DriverRating: 4.7, PostedAt: now.Add(-14 * day)},
	}

	c.drivers = []*Driver{
		{ID: "1", Name: "Rajesh Kumar", Rating: 4.8, TrustScore: 92, Experience: 8, Trips: 2450, Location: "Mumbai", DistanceKM: 2.5, Available: true, CompletionRate: 96},
		{ID: "2", Name: "Sunil Yadav", Rating: 4.6, TrustScore: 88, Experience: 5, Trips: 1680, Location: "Pune", DistanceKM: 4.1, Available: true, CompletionRate: 91},
		{ID: "3", Name: "Vikram Singh", Rating: 4.9, TrustScore: 95, Experience: 12, Trips: 4200, Location: "Mumbai", DistanceKM: 6.0, Available: false, CompletionRate: 98},
		{ID: "4", Name: "Anil Sharma", Rating: 4.5, TrustScore: 82, Experience: 3, Trips: 890, Location: "Thane", DistanceKM: 9.3, Available: true, CompletionRate: 88},
		{ID: "5", Name: "Deepak Pawar", Rating: 4.7, TrustScore: 90, Experience: 7, Trips: 3100, Location: "Navi Mumbai", DistanceKM: 12.4, Available: true, CompletionRate: 94},
		{ID: "6", Name: "Manoj Desai", Rating: 4.4, TrustScore: 78, Experience: 2, Trips: 520, Location: "Pune", DistanceKM: 18.0, Available: false, CompletionRate: 85},
	}

	c.walletTransactions = []*Transaction{
		{ID: "1", Type: TxEarning, Title: "Mumbai - Pune Transfer", Amount: 2500, At: now},
		{ID: "2", Type: TxCommission, Title: "Platform Commission (10%)", Amount: -250, At: now},
		{ID: "3", Type: TxEarning, Title: "Local City Driving", Amount: 1200, At: now.Add(-day)},
		{ID: "4", Type: TxCommission, Title: "Platform Commission (10%)", Amount: -120, At: now.Add(-day)},
		{ID: "5", Type: TxWithdrawal, Title: "Bank Transfer", Amount: -5000, At: now.Add(-7 * day), Status: TxCompleted},
		{ID: "6", Type: TxBonus, Title: "Weekly Bonus - 10+ Rides", Amount: 500, At: now.Add(-9 * day)},
		{ID: "7", Type: TxEarning, Title: "Airport Pickup", Amount: 800, At: now.Add(-10 * day)},
		{ID: "8", Type: TxWithdrawal, Title: "Bank Transfer", Amount: -3000, At: now.Add(-14 * day), Status: TxPending},
	}

	c.platformTransactions = []*PlatformTransaction{
		{ID: "1", Type: PlatformCommission, From: "Rajesh Kumar", Amount: 250, At: now},
		{ID: "2", Type: PlatformBoost, From: "Suresh Patil", Amount: 500, At: now},
		{ID: "3", Type: PlatformCommission, From: "Sunil Yadav", Amount: 120, At: now.Add(-day)},
		{ID: "4", Type: PlatformWithdrawal, From: "Deepak Pawar", Amount: -5000, At: now.Add(-day), Status: TxApproved},
		{ID: "5", Type: PlatformSubscription, From: "TechCorp Ltd", Amount: 1999, At: now.Add(-7 * day)},
		{ID: "6", Type: PlatformCommission, From: "Vikram Singh", Amount: 500, At: now.Add(-7 * day)},
		{ID: "7", Type: PlatformWithdrawal, From: "Manoj Desai", Amount: -3000, At: now.Add(-8 * day), Status: TxPending},
		{ID: "8", Type: PlatformBoost, From: "Amit Shah", Amount: 300, At: now.Add(-9 * day)},
	}

	c.users = seedUsers()
}

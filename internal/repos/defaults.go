package repos

import "github.com/touchandglow905/touchandglow/internal/domain"

// DefaultServices is the fixed catalog inserted by the admin bulk-seed
// action. Prices are in rupees.
var DefaultServices = []domain.Service{
	{Name: "Classic Hair Cut", Price: 150, Category: "Hair Cut", Type: domain.AudienceMale, Duration: 30},
	{Name: "Beard Trim & Shape", Price: 100, Category: "Shaving", Type: domain.AudienceMale, Duration: 20},
	{Name: "Clean Shave", Price: 80, Category: "Shaving", Type: domain.AudienceMale, Duration: 20},
	{Name: "Hair Colour (Men)", Price: 400, Category: "Hair Colour", Type: domain.AudienceMale, Duration: 45},
	{Name: "Head Massage", Price: 200, Category: "Massage", Type: domain.AudienceMale, Duration: 30},
	{Name: "Face Clean Up", Price: 350, Category: "Facial", Type: domain.AudienceMale, Duration: 40},
	{Name: "Gold Facial", Price: 800, Category: "Facial", Type: domain.AudienceFemale, Duration: 60},
	{Name: "Full Arm Wax", Price: 300, Category: "Waxing", Type: domain.AudienceFemale, Duration: 30},
	{Name: "Full Leg Wax", Price: 400, Category: "Waxing", Type: domain.AudienceFemale, Duration: 40},
	{Name: "Eyebrow Threading", Price: 50, Category: "Threading", Type: domain.AudienceFemale, Duration: 15},
	{Name: "Party Makeup", Price: 1500, Category: "Makeup", Type: domain.AudienceFemale, Duration: 90},
	{Name: "Bridal Makeup", Price: 5000, Category: "Makeup", Type: domain.AudienceFemale, Duration: 180},
	{Name: "Women Hair Cut", Price: 300, Category: "Hair Cut", Type: domain.AudienceFemale, Duration: 45},
	{Name: "Hair Spa", Price: 700, Category: "Hair Care", Type: domain.AudienceFemale, Duration: 60},
	{Name: "Kids Hair Cut", Price: 100, Category: "Hair Cut", Type: domain.AudienceKids, Duration: 20},
	{Name: "Kids Hair Style", Price: 150, Category: "Hair Care", Type: domain.AudienceKids, Duration: 25},
}

// DefaultSlots covers the working day on the hour, capacity 2 each.
var DefaultSlots = []domain.Slot{
	{Time: "10:00", Capacity: 2},
	{Time: "11:00", Capacity: 2},
	{Time: "12:00", Capacity: 2},
	{Time: "13:00", Capacity: 2},
	{Time: "14:00", Capacity: 2},
	{Time: "15:00", Capacity: 2},
	{Time: "16:00", Capacity: 2},
	{Time: "17:00", Capacity: 2},
	{Time: "18:00", Capacity: 2},
	{Time: "19:00", Capacity: 2},
	{Time: "20:00", Capacity: 2},
}

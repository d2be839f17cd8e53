// Package catalog holds the hand-authored content the daily generators
// sample from.
package catalog

import (
	"strings"

	"github.com/chronox22/eco-gamer-collective/internal/models"
)

var coreHabits = []models.HabitDefinition{
	{
		ID:                 "biking",
		Name:               "Bike to work",
		Description:        "Use a bike instead of a car for your commute",
		Impact:             "Saves 3.6kg of CO2 emissions",
		Points:             15,
		VerificationPrompt: "Take a photo of your bike at your destination",
	},
	{
		ID:                 "reusable",
		Name:               "Use reusable cup",
		Description:        "Avoid disposable cups for your coffee or tea",
		Impact:             "Saves 0.5kg of waste per week",
		Points:             5,
		VerificationPrompt: "Take a photo of your drink in your reusable cup",
	},
	{
		ID:          "water",
		Name:        "Short shower",
		Description: "Keep your shower under 5 minutes",
		Impact:      "Saves up to 35L of water per shower",
		Points:      10,
	},
	{
		ID:                 "recycle",
		Name:               "Recycled today",
		Description:        "Properly sort and recycle your waste",
		Impact:             "Reduces landfill waste by 30%",
		Points:             10,
		VerificationPrompt: "Take a photo of your sorted bins",
	},
	{
		ID:          "energy",
		Name:        "Energy saver",
		Description: "Turn off lights and appliances when not in use",
		Impact:      "Reduces energy consumption by 10%",
		Points:      5,
	},
}

var extraHabits = []models.HabitDefinition{
	{
		ID:                 "meatless",
		Name:               "Meatless meal",
		Description:        "Choose a plant-based option for one meal",
		Impact:             "Saves about 1.5kg of CO2 per meal",
		Points:             10,
		VerificationPrompt: "Take a photo of your plant-based meal",
	},
	{
		ID:                 "bag",
		Name:               "Reusable bag",
		Description:        "Bring your own bag when shopping",
		Impact:             "Avoids 1 plastic bag per trip",
		Points:             5,
		VerificationPrompt: "Take a photo of your groceries in your own bag",
	},
	{
		ID:          "unplug",
		Name:        "Unplug devices",
		Description: "Unplug chargers and electronics that are not in use",
		Impact:      "Cuts standby power by up to 10%",
		Points:      5,
	},
	{
		ID:          "airdry",
		Name:        "Air-dry laundry",
		Description: "Hang your clothes to dry instead of using a dryer",
		Impact:      "Saves 2.4kg of CO2 per load",
		Points:      10,
	},
	{
		ID:                 "local",
		Name:               "Buy local",
		Description:        "Buy produce from local farmers",
		Impact:             "Cuts transport emissions of your food",
		Points:             10,
		VerificationPrompt: "Take a photo of your market haul",
	},
	{
		ID:                 "bottle",
		Name:               "Refill a bottle",
		Description:        "Use a reusable water bottle instead of buying plastic",
		Impact:             "Avoids 1 plastic bottle per refill",
		Points:             5,
		VerificationPrompt: "Take a photo of your refilled bottle",
	},
	{
		ID:          "walk",
		Name:        "Walk short trips",
		Description: "Walk instead of driving for trips under 2km",
		Impact:      "Saves 0.4kg of CO2 per trip",
		Points:      10,
	},
}

var words = []models.Word{
	{Word: "Sustainability", Definition: "Meeting the needs of the present without compromising future generations' ability to meet their own needs."},
	{Word: "Biodiversity", Definition: "The variety of plant and animal life in the world or in a particular habitat."},
	{Word: "Conservation", Definition: "Protection, preservation, and careful management of natural resources and environment."},
	{Word: "Renewable", Definition: "A natural resource or source of energy that is not depleted when used."},
	{Word: "Ecosystem", Definition: "A biological community of interacting organisms and their physical environment."},
	{Word: "Compost", Definition: "Decayed organic material used as a fertilizer for growing plants."},
	{Word: "Recycling", Definition: "Converting waste materials into new materials and objects."},
	{Word: "Carbon Footprint", Definition: "The amount of carbon dioxide released into the atmosphere as a result of one's activities."},
	{Word: "Upcycling", Definition: "Reusing discarded objects or material to create a product of higher quality or value."},
	{Word: "Zero-waste", Definition: "A philosophy that encourages the redesign of resource life cycles so that all products are reused."},
	{Word: "Permaculture", Definition: "The development of agricultural ecosystems intended to be sustainable and self-sufficient."},
	{Word: "Greenwashing", Definition: "Disinformation disseminated by an organization to present an environmentally responsible public image."},
}

var verses = []models.Verse{
	{Verse: "Philippians 4:13", Text: "I can do all things through Christ who strengthens me."},
	{Verse: "Jeremiah 29:11", Text: "For I know the plans I have for you, declares the Lord, plans to prosper you and not to harm you, plans to give you hope and a future."},
	{Verse: "Romans 8:28", Text: "And we know that in all things God works for the good of those who love him, who have been called according to his purpose."},
	{Verse: "Proverbs 3:5-6", Text: "Trust in the LORD with all your heart and lean not on your own understanding; in all your ways submit to him, and he will make your paths straight."},
	{Verse: "Isaiah 40:31", Text: "But those who hope in the LORD will renew their strength. They will soar on wings like eagles; they will run and not grow weary, they will walk and not be faint."},
	{Verse: "Psalm 23:1", Text: "The LORD is my shepherd, I lack nothing."},
	{Verse: "John 3:16", Text: "For God so loved the world that he gave his one and only Son, that whoever believes in him shall not perish but have eternal life."},
	{Verse: "Romans 12:2", Text: "Do not conform to the pattern of this world, but be transformed by the renewing of your mind."},
	{Verse: "Matthew 6:33", Text: "But seek first his kingdom and his righteousness, and all these things will be given to you as well."},
	{Verse: "1 Corinthians 13:4-5", Text: "Love is patient, love is kind. It does not envy, it does not boast, it is not proud. It does not dishonor others, it is not self-seeking."},
	{Verse: "Psalm 91:11", Text: "For he will command his angels concerning you to guard you in all your ways."},
	{Verse: "2 Corinthians 5:17", Text: "Therefore, if anyone is in Christ, the new creation has come: The old has gone, the new is here!"},
}

var reminders = []string{
	"Today is plastic waste collection day! Segregate your trash properly.",
	"Turn off lights in empty rooms to save energy and reduce your carbon footprint.",
	"Remember to carry a reusable bag for shopping today.",
	"Try to eat less meat today! Animal agriculture is a major contributor to greenhouse gases.",
	"Check your tap for leaks and fix them to save water.",
	"Walk or bike for short trips instead of driving.",
	"Unplug electronics when not in use to save standby power.",
	"Wash clothes in cold water to save energy.",
	"Air-dry your clothes instead of using a dryer.",
	"Use a reusable water bottle instead of buying plastic bottles.",
	"Consider planting a tree or supporting a tree-planting organization today.",
	"Try to reduce your shower time by 2 minutes to save water.",
	"Use natural light when possible instead of turning on lights.",
	"Support local farmers by buying local produce.",
	"Download and use an app to track your carbon footprint.",
}

var slides = []models.Slide{
	{Title: "Eco-Friendly Habits", Description: "Start building sustainable routines and monitor the positive impact on our environment."},
	{Title: "Track Your Impact", Description: "Discover the metrics of your eco-friendly choices and see the positive change you make each day."},
	{Title: "Join Our Community", Description: "Connect with eco-conscious individuals and share sustainable tips and achievements."},
	{Title: "Earn Eco-points", Description: "Redeem your rewards for making sustainable choices and contributing to a greener planet."},
}

var tutorialSteps = []models.TutorialStep{
	{Title: "Welcome to EcoTracker!", Description: "Let's take a quick tour to help you get started on your sustainability journey."},
	{Title: "Home Dashboard", Description: "View your sustainability summary, upcoming challenges, and track your daily impact.", Target: "today"},
	{Title: "Track Your Habits", Description: "Create and maintain eco-friendly habits. Regular tracking earns you eco-points!", Target: "habits"},
	{Title: "Learn & Grow", Description: "Discover new ways to live sustainably through the word and verse of the day.", Target: "word"},
	{Title: "Join the Community", Description: "Connect with like-minded people and participate in group challenges."},
	{Title: "Your Profile", Description: "View your achievements, impact stats, and manage your account."},
	{Title: "Redeem Your Points", Description: "Convert your eco-points into real-world rewards or environmental donations."},
	{Title: "You're All Set!", Description: "Start your eco-friendly journey today. You can run this tutorial again with 'ecogamer tutorial'."},
}

// Article categories, in tab order.
const (
	CategoryClimate = "Climate"
	CategoryWater   = "Water"
	CategoryWaste   = "Waste"
	CategoryEnergy  = "Energy"
)

var articleCategories = []string{CategoryClimate, CategoryWater, CategoryWaste, CategoryEnergy}

var articles = []models.Article{
	{
		ID:          "everyday-choices",
		Title:       "The Surprising Impact of Everyday Choices",
		Excerpt:     "Small daily decisions can add up to significant environmental benefits over time.",
		Category:    CategoryClimate,
		ReadMinutes: 4,
		ImageURL:    "https://images.unsplash.com/photo-1536599424071-0b215a388ba7?auto=format&fit=crop&q=80&w=400",
		Body: []string{
			"A single bike commute or meatless lunch looks negligible next to global emissions. Repeated every day for a year, the same choice removes hundreds of kilograms of CO2 from one person's footprint.",
			"Habits also spread. People are measurably more likely to adopt a behaviour they see friends and neighbours practising, so each routine you keep nudges the people around you.",
			"Start with the choice that costs you the least effort and track it. Consistency matters more than the size of any single action.",
		},
	},
	{
		ID:          "carbon-footprints",
		Title:       "Understanding Carbon Footprints",
		Excerpt:     "A comprehensive guide to understanding and reducing your carbon footprint.",
		Category:    CategoryClimate,
		ReadMinutes: 8,
		ImageURL:    "https://images.unsplash.com/photo-1500382017468-9049fed747ef?auto=format&fit=crop&q=80&w=400",
		Body: []string{
			"A carbon footprint is the total greenhouse gas emitted to support a person, product or organisation, expressed as the equivalent mass of CO2.",
			"For most households the largest shares come from transport, home energy and food. Flights and car travel dominate for frequent travellers; heating dominates in cold climates.",
			"Measure first, then cut the biggest category. Switching one long car commute to transit or cycling usually beats a dozen smaller changes combined.",
			"Offsets can cover what is left, but they work best as a last step after direct reductions.",
		},
	},
	{
		ID:          "water-at-home",
		Title:       "Water Conservation at Home: Easy Steps",
		Excerpt:     "Simple ways to reduce your water footprint without disrupting your daily routine.",
		Category:    CategoryWater,
		ReadMinutes: 5,
		ImageURL:    "https://images.unsplash.com/photo-1527066236128-2ff79f7b9705?auto=format&fit=crop&q=80&w=400",
		Body: []string{
			"Showers are often the biggest indoor water use. Cutting a shower to five minutes saves up to 35 litres each time.",
			"Fix dripping taps and running toilets promptly; a slow leak can waste thousands of litres a year.",
			"Run dishwashers and washing machines only when full, and collect rainwater for the garden where you can.",
		},
	},
	{
		ID:          "zero-waste-start",
		Title:       "Zero Waste Lifestyle: Getting Started",
		Excerpt:     "Practical tips for beginners looking to reduce their household waste.",
		Category:    CategoryWaste,
		ReadMinutes: 7,
		ImageURL:    "https://images.unsplash.com/photo-1532996122724-e3c354a0b15b?auto=format&fit=crop&q=80&w=400",
		Body: []string{
			"Zero waste is a direction rather than a destination. Begin by looking in your bin for a week and noting what fills it most.",
			"Swap the most common single-use items first: a reusable cup, a water bottle and a shopping bag cover a large share of everyday packaging.",
			"Sort what remains carefully. Contaminated recycling is often sent to landfill, so rinse containers and follow your local rules.",
			"Compost food scraps if you can. Organic waste in landfill produces methane, a potent greenhouse gas.",
		},
	},
	{
		ID:          "renewable-energy",
		Title:       "Renewable Energy: The Future is Now",
		Excerpt:     "How renewable energy is transforming our world and how you can be part of it.",
		Category:    CategoryEnergy,
		ReadMinutes: 6,
		ImageURL:    "https://images.unsplash.com/photo-1466611653911-95081537e5b7?auto=format&fit=crop&q=80&w=400",
		Body: []string{
			"Solar and wind are now the cheapest sources of new electricity in most of the world, and their share of the grid grows every year.",
			"You can take part without installing panels: many suppliers offer renewable tariffs, and community energy schemes let you invest in local projects.",
			"The cleanest energy is the energy you never use. Turning off idle appliances and lights reduces demand on every kind of grid.",
		},
	},
}

// CoreHabits returns the five tracker habits in display order.
func CoreHabits() []models.HabitDefinition {
	return clone(coreHabits)
}

// AllHabits returns the core habits followed by the extended catalog.
func AllHabits() []models.HabitDefinition {
	all := make([]models.HabitDefinition, 0, len(coreHabits)+len(extraHabits))
	all = append(all, coreHabits...)
	return append(all, extraHabits...)
}

// LookupHabit finds a habit by ID in the full catalog.
func LookupHabit(id string) (models.HabitDefinition, bool) {
	for _, h := range AllHabits() {
		if h.ID == id {
			return h, true
		}
	}
	return models.HabitDefinition{}, false
}

func Words() []models.Word                 { return clone(words) }
func Verses() []models.Verse               { return clone(verses) }
func Reminders() []string                  { return clone(reminders) }
func Slides() []models.Slide               { return clone(slides) }
func TutorialSteps() []models.TutorialStep { return clone(tutorialSteps) }

// ArticleCategories returns the article categories in display order.
func ArticleCategories() []string { return clone(articleCategories) }

// Articles returns the articles in category, matched case-insensitively.
// An empty category or "all" returns every article.
func Articles(category string) []models.Article {
	if category == "" || strings.EqualFold(category, "all") {
		return cloneArticles(articles)
	}
	var out []models.Article
	for _, a := range articles {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return cloneArticles(out)
}

// LookupArticle finds an article by ID.
func LookupArticle(id string) (models.Article, bool) {
	for _, a := range articles {
		if a.ID == id {
			return cloneArticles([]models.Article{a})[0], true
		}
	}
	return models.Article{}, false
}

// cloneArticles also copies each Body so callers cannot edit the catalog.
func cloneArticles(in []models.Article) []models.Article {
	out := clone(in)
	for i := range out {
		out[i].Body = clone(out[i].Body)
	}
	return out
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}

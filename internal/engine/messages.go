package engine

// Response text used by the stage handlers. Kept together so the
// conversation copy can be reviewed in one place.
const (
	msgWelcome = "Welcome to BuildSmart! I can put together a remodeling estimate for you. " +
		"Which rooms are you thinking about remodeling? For example: kitchen, bathroom, bedroom, or basement."

	msgRecovered = "Let's start fresh. Which rooms are you thinking about remodeling?"

	msgRoomsNotDetected = "I didn't catch a room there. You can say things like " +
		"\"my kitchen\", \"the master bathroom\", or \"kitchen and basement\"."

	msgDimensionsNotDetected = "Could you give me the size of the %s? " +
		"You can say \"10 by 12\", \"120 square feet\", or just \"small\", \"medium\", or \"large\"."

	msgDimensionsIncomplete = "I need both measurements to size the %s. " +
		"Could you give me the length and the width, like \"10 by 12\"?"

	msgDimensionsImplausible = "That seems like an unusual size for a %s. " +
		"Could you double-check the measurements? Rooms are typically between 10 and 10,000 square feet."

	msgDimensionsBudgetGuard = "We'll get to budget in just a moment. First I need the size of the %s. " +
		"You can say \"10 by 12\" or \"120 square feet\"."

	msgAskNextRoomDimensions = "Got it, %s for the %s. Now, how big is the %s?"

	msgAskBudget = "Great, that's %s total. What's your budget for the whole project? " +
		"You can give a range like \"$15,000 to $25,000\", a single amount, or just say \"modest\" or \"high-end\"."

	msgBudgetNotDetected = "I didn't catch a budget there. You can give a range like \"$10,000 - $20,000\", " +
		"a single number like \"$15,000\", or describe it as \"tight\", \"average\", or \"luxury\"."

	msgBudgetImplausible = "That amount looks unusual for a remodeling project. " +
		"Did you mean thousands of dollars? Budgets typically fall between $1,000 and $1,000,000."

	msgBudgetDimensionGuard = "Those look like room measurements, but I have your room sizes already. " +
		"Right now I need your budget, like \"$15,000\" or \"$10,000 to $20,000\"."

	msgAskPreferences = "Your budget works out to about $%g per square foot (%s tier). " +
		"Now for the fun part: what design style do you like? Modern, traditional, farmhouse? " +
		"Feel free to mention colors and materials too."

	msgPreferencesNotDetected = "Tell me a bit about the look you want. A style like \"modern\" or \"farmhouse\", " +
		"colors like \"white\" or \"navy\", or materials like \"quartz\" or \"hardwood\" all help."

	msgPreferencesGuard = "We've already covered sizes and budget. Right now I'm after your design taste: " +
		"a style, some colors, or materials you love."

	msgSelectionNotDetected = "Would you like to include these products in the estimate? " +
		"Say \"yes\" for all of them, \"no\" for labor only, or pick by number like \"1 and 3\"."

	msgContactSaved = "Perfect, I'll send the full estimate to %s. " +
		"You can also say \"show me more products\" or \"start over\"."

	msgSummaryFollowUp = "You can say \"show me more products\" to revisit the product options, " +
		"\"start over\" for a new estimate, or leave your email address and I'll send you the full estimate."
)

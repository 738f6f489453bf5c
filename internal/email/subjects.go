package email

const subjectEstimate = "Your remodeling estimate is ready"

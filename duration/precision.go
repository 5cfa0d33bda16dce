package duration

// Precision is the finest unit printed by NiceDuration.
type Precision int

const (
	// Milliseconds keeps everything.
	Milliseconds Precision = iota
	// Seconds discards milliseconds.
	Seconds
	// Minutes discards seconds and below.
	Minutes
	// Hours discards minutes and below.
	Hours
	// Days discards hours and below.
	Days
	// Weeks discards days and below.
	Weeks
)

func (p Precision) Valid() bool {
	return Milliseconds <= p && p <= Weeks
}

func (p Precision) String() string {
	switch p {
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	default:
		return "unknown"
	}
}

// PrecisionMicro is the finest unit printed by NiceDurationMicro.
type PrecisionMicro int

const (
	MicroMicroseconds PrecisionMicro = iota
	MicroMilliseconds
	MicroSeconds
	MicroMinutes
	MicroHours
	MicroDays
	MicroWeeks
)

func (p PrecisionMicro) Valid() bool {
	return MicroMicroseconds <= p && p <= MicroWeeks
}

func (p PrecisionMicro) String() string {
	if p == MicroMicroseconds {
		return "microseconds"
	}
	return Precision(p - 1).String()
}

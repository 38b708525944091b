package vacplan

// Version is the current release of the vacplan module.
const Version = "v1.0.0"

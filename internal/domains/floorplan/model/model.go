package model

const EntityName = "floorplan"

// ObjectDirectory is the S3 prefix the mirrored floor-plan image lives under.
const ObjectDirectory = "floorplan"

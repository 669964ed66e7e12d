package ofp4

const OFP_VERSION = 4

// Message types.
const (
	OFPT_HELLO = iota
	OFPT_ERROR
	OFPT_ECHO_REQUEST
	OFPT_ECHO_REPLY
	OFPT_EXPERIMENTER
	OFPT_FEATURES_REQUEST
	OFPT_FEATURES_REPLY
	OFPT_GET_CONFIG_REQUEST
	OFPT_GET_CONFIG_REPLY
	OFPT_SET_CONFIG
	OFPT_PACKET_IN
	OFPT_FLOW_REMOVED
	OFPT_PORT_STATUS
	OFPT_PACKET_OUT
	OFPT_FLOW_MOD
	OFPT_GROUP_MOD
	OFPT_PORT_MOD
	OFPT_TABLE_MOD
	OFPT_MULTIPART_REQUEST
	OFPT_MULTIPART_REPLY
	OFPT_BARRIER_REQUEST
	OFPT_BARRIER_REPLY
	OFPT_QUEUE_GET_CONFIG_REQUEST
	OFPT_QUEUE_GET_CONFIG_REPLY
	OFPT_ROLE_REQUEST
	OFPT_ROLE_REPLY
	OFPT_GET_ASYNC_REQUEST
	OFPT_GET_ASYNC_REPLY
	OFPT_SET_ASYNC
	OFPT_METER_MOD
)

var typeNames = map[uint8]string{
	OFPT_HELLO:                    "hello",
	OFPT_ERROR:                    "error",
	OFPT_ECHO_REQUEST:             "echo_request",
	OFPT_ECHO_REPLY:               "echo_reply",
	OFPT_EXPERIMENTER:             "experimenter",
	OFPT_FEATURES_REQUEST:         "features_request",
	OFPT_FEATURES_REPLY:           "features_reply",
	OFPT_GET_CONFIG_REQUEST:       "get_config_request",
	OFPT_GET_CONFIG_REPLY:         "get_config_reply",
	OFPT_SET_CONFIG:               "set_config",
	OFPT_PACKET_IN:                "packet_in",
	OFPT_FLOW_REMOVED:             "flow_removed",
	OFPT_PORT_STATUS:              "port_status",
	OFPT_PACKET_OUT:               "packet_out",
	OFPT_FLOW_MOD:                 "flow_mod",
	OFPT_GROUP_MOD:                "group_mod",
	OFPT_PORT_MOD:                 "port_mod",
	OFPT_TABLE_MOD:                "table_mod",
	OFPT_MULTIPART_REQUEST:        "multipart_request",
	OFPT_MULTIPART_REPLY:          "multipart_reply",
	OFPT_BARRIER_REQUEST:          "barrier_request",
	OFPT_BARRIER_REPLY:            "barrier_reply",
	OFPT_QUEUE_GET_CONFIG_REQUEST: "queue_get_config_request",
	OFPT_QUEUE_GET_CONFIG_REPLY:   "queue_get_config_reply",
	OFPT_ROLE_REQUEST:             "role_request",
	OFPT_ROLE_REPLY:               "role_reply",
	OFPT_GET_ASYNC_REQUEST:        "get_async_request",
	OFPT_GET_ASYNC_REPLY:          "get_async_reply",
	OFPT_SET_ASYNC:                "set_async",
	OFPT_METER_MOD:                "meter_mod",
}

// TypeName returns the lower case name of an OFPT_* value.
func TypeName(ofpt uint8) string {
	if name, ok := typeNames[ofpt]; ok {
		return name
	}
	return "unknown"
}

// Packet-in reasons.
const (
	OFPR_NO_MATCH = iota
	OFPR_ACTION
	OFPR_INVALID_TTL
	OFPR_ACTION_SET
	OFPR_GROUP
	OFPR_PACKET_OUT
)

const OFP_NO_BUFFER = 0xffffffff

const OFPHET_VERSIONBITMAP = 1

// Switch capabilities.
const (
	OFPC_FLOW_STATS   = 1 << 0
	OFPC_TABLE_STATS  = 1 << 1
	OFPC_PORT_STATS   = 1 << 2
	OFPC_GROUP_STATS  = 1 << 3
	OFPC_IP_REASM     = 1 << 5
	OFPC_QUEUE_STATS  = 1 << 6
	OFPC_PORT_BLOCKED = 1 << 8
	OFPC_BUNDLES      = 1 << 9
	OFPC_FLOW_MONITOR = 1 << 10
)

// Switch configuration flags.
const (
	OFPC_FRAG_NORMAL = 0
	OFPC_FRAG_DROP   = 1
	OFPC_FRAG_REASM  = 2
	OFPC_FRAG_MASK   = 3
)

const OFPCML_NO_BUFFER = 0xffff

// Error types.
const (
	OFPET_HELLO_FAILED = iota
	OFPET_BAD_REQUEST
	OFPET_BAD_ACTION
	OFPET_BAD_INSTRUCTION
	OFPET_BAD_MATCH
	OFPET_FLOW_MOD_FAILED
	OFPET_GROUP_MOD_FAILED
	OFPET_PORT_MOD_FAILED
	OFPET_TABLE_MOD_FAILED
	OFPET_QUEUE_OP_FAILED
	OFPET_SWITCH_CONFIG_FAILED
	OFPET_ROLE_REQUEST_FAILED
	OFPET_METER_MOD_FAILED
	OFPET_TABLE_FEATURES_FAILED
	OFPET_BAD_PROPERTY
	OFPET_ASYNC_CONFIG_FAILED
	OFPET_FLOW_MONITOR_FAILED
	OFPET_BUNDLE_FAILED
	OFPET_EXPERIMENTER = 0xffff
)

var errorTypeNames = map[uint16]string{
	OFPET_HELLO_FAILED:          "hello_failed",
	OFPET_BAD_REQUEST:           "bad_request",
	OFPET_BAD_ACTION:            "bad_action",
	OFPET_BAD_INSTRUCTION:       "bad_instruction",
	OFPET_BAD_MATCH:             "bad_match",
	OFPET_FLOW_MOD_FAILED:       "flow_mod_failed",
	OFPET_GROUP_MOD_FAILED:      "group_mod_failed",
	OFPET_PORT_MOD_FAILED:       "port_mod_failed",
	OFPET_TABLE_MOD_FAILED:      "table_mod_failed",
	OFPET_QUEUE_OP_FAILED:       "queue_op_failed",
	OFPET_SWITCH_CONFIG_FAILED:  "switch_config_failed",
	OFPET_ROLE_REQUEST_FAILED:   "role_request_failed",
	OFPET_METER_MOD_FAILED:      "meter_mod_failed",
	OFPET_TABLE_FEATURES_FAILED: "table_features_failed",
	OFPET_BAD_PROPERTY:          "bad_property",
	OFPET_ASYNC_CONFIG_FAILED:   "async_config_failed",
	OFPET_FLOW_MONITOR_FAILED:   "flow_monitor_failed",
	OFPET_BUNDLE_FAILED:         "bundle_failed",
	OFPET_EXPERIMENTER:          "experimenter",
}

// OFPET_BAD_MATCH codes.
const (
	OFPBMC_BAD_TYPE = iota
	OFPBMC_BAD_LEN
	OFPBMC_BAD_TAG
	OFPBMC_BAD_DL_ADDR_MASK
	OFPBMC_BAD_NW_ADDR_MASK
	OFPBMC_BAD_WILDCARDS
	OFPBMC_BAD_FIELD
	OFPBMC_BAD_VALUE
	OFPBMC_BAD_MASK
	OFPBMC_BAD_PREREQ
	OFPBMC_DUP_FIELD
	OFPBMC_EPERM
)
